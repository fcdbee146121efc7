package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		APIKey:           "test-key",
		BaseURL:          "https://api.openai.com/v1",
		Model:            "gpt-4o-mini",
		Language:         "en",
		MaxLength:        72,
		SuggestionsCount: 3,
		Format:           FormatConventional,
		DetailsStyle:     StyleList,
		TimeoutMs:        60000,
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("creates a default config when none exists", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)

		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, 72, cfg.MaxLength)
		assert.Equal(t, 3, cfg.SuggestionsCount)
		assert.Equal(t, FormatConventional, cfg.Format)
		assert.Equal(t, StyleList, cfg.DetailsStyle)
		assert.Equal(t, 60000, cfg.TimeoutMs)
		assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
		assert.Equal(t, "<type>(<scope>): <subject>", cfg.ConventionalTemplate)
		assert.Empty(t, cfg.APIKey)

		assert.FileExists(t, filepath.Join(home, ".smart-commit", "config.json"))
	})

	t.Run("loads an existing file and fills missing fields with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"api_key":"persisted","language":"es"}`), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "persisted", cfg.APIKey)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, 72, cfg.MaxLength)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("rejects a corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("rejects unsupported enum values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"format":"emoji"}`), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round trips through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := validConfig(t)
		cfg.PathFile = path
		cfg.ExcludePatterns = []string{"*.lock", "vendor/*"}

		require.NoError(t, SaveConfig(cfg))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var loaded Config
		require.NoError(t, json.Unmarshal(data, &loaded))
		assert.Equal(t, cfg.APIKey, loaded.APIKey)
		assert.Equal(t, cfg.ExcludePatterns, loaded.ExcludePatterns)
	})

	t.Run("refuses to save without a path", func(t *testing.T) {
		cfg := validConfig(t)

		assert.Error(t, SaveConfig(cfg))
	})
}

func TestValidateGeneration(t *testing.T) {
	t.Run("a complete config passes", func(t *testing.T) {
		assert.NoError(t, validConfig(t).ValidateGeneration())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing api key", func(c *Config) { c.APIKey = "" }, "api_key"},
		{"missing base url", func(c *Config) { c.BaseURL = "" }, "base_url"},
		{"missing model", func(c *Config) { c.Model = "" }, "model"},
		{"invalid language tag", func(c *Config) { c.Language = "no-such-lang!" }, "language"},
		{"max length below minimum", func(c *Config) { c.MaxLength = 10 }, "max_length"},
		{"suggestions count too high", func(c *Config) { c.SuggestionsCount = 9 }, "suggestions_count"},
		{"suggestions count too low", func(c *Config) { c.SuggestionsCount = 0 }, "suggestions_count"},
		{"unknown format", func(c *Config) { c.Format = "emoji" }, "format"},
		{"unknown details style", func(c *Config) { c.DetailsStyle = "haiku" }, "details_style"},
		{"non-positive timeout", func(c *Config) { c.TimeoutMs = 0 }, "timeout_ms"},
		{"temperature out of range", func(c *Config) { temp := 3.5; c.Temperature = &temp }, "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.ValidateGeneration()

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	t.Run("temperature within range passes", func(t *testing.T) {
		cfg := validConfig(t)
		temp := 0.7
		cfg.Temperature = &temp

		assert.NoError(t, cfg.ValidateGeneration())
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("dedicated variables win over the file", func(t *testing.T) {
		t.Setenv("SMART_COMMIT_API_KEY", "env-key")
		t.Setenv("SMART_COMMIT_BASE_URL", "https://proxy.internal/v1")
		t.Setenv("SMART_COMMIT_PROXY", "http://127.0.0.1:8080")

		cfg := validConfig(t)
		ApplyEnvOverrides(cfg)

		assert.Equal(t, "env-key", cfg.APIKey)
		assert.Equal(t, "https://proxy.internal/v1", cfg.BaseURL)
		assert.Equal(t, "http://127.0.0.1:8080", cfg.Proxy)
	})

	t.Run("openai fallback only fills an empty key", func(t *testing.T) {
		t.Setenv("SMART_COMMIT_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "fallback-key")

		cfg := validConfig(t)
		ApplyEnvOverrides(cfg)
		assert.Equal(t, "test-key", cfg.APIKey, "a persisted key is not overridden by the fallback")

		cfg.APIKey = ""
		ApplyEnvOverrides(cfg)
		assert.Equal(t, "fallback-key", cfg.APIKey)
	})

	t.Run("no variables leaves the config untouched", func(t *testing.T) {
		t.Setenv("SMART_COMMIT_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("SMART_COMMIT_BASE_URL", "")
		t.Setenv("SMART_COMMIT_PROXY", "")

		cfg := validConfig(t)
		ApplyEnvOverrides(cfg)

		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
		assert.Empty(t, cfg.Proxy)
	})
}
