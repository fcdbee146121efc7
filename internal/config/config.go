package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"golang.org/x/text/language"
)

type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	Proxy   string `json:"proxy,omitempty"`

	Language         string   `json:"language"`
	MaxLength        int      `json:"max_length"`
	SuggestionsCount int      `json:"suggestions_count"`
	Format           string   `json:"format"`
	IncludeDetails   bool     `json:"include_details"`
	DetailsStyle     string   `json:"details_style"`
	TimeoutMs        int      `json:"timeout_ms"`
	Temperature      *float64 `json:"temperature,omitempty"`

	CustomInstructions   string            `json:"custom_instructions,omitempty"`
	ConventionalTemplate string            `json:"conventional_template,omitempty"`
	ConventionalTypes    map[string]string `json:"conventional_types,omitempty"`
	ConventionalScope    bool              `json:"conventional_scope"`

	ExcludePatterns []string `json:"exclude_patterns,omitempty"`
	PathFile        string   `json:"path_file"`
}

const (
	FormatPlain        = "plain"
	FormatConventional = "conventional"

	StyleParagraph = "paragraph"
	StyleList      = "list"

	MinSuggestions = 1
	MaxSuggestions = 5
	MinTitleLength = 20

	defaultLang             = "en"
	defaultMaxLength        = 72
	defaultSuggestionsCount = 3
	defaultTimeoutMs        = 60000
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultModel            = "gpt-4o-mini"
	defaultTemplate         = "<type>(<scope>): <subject>"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".smart-commit")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{PathFile: path}
	applyDefaults(config)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.MaxLength == 0 {
		config.MaxLength = defaultMaxLength
	}
	if config.SuggestionsCount == 0 {
		config.SuggestionsCount = defaultSuggestionsCount
	}
	if config.Format == "" {
		config.Format = FormatConventional
	}
	if config.DetailsStyle == "" {
		config.DetailsStyle = StyleList
	}
	if config.TimeoutMs == 0 {
		config.TimeoutMs = defaultTimeoutMs
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.ConventionalTemplate == "" {
		config.ConventionalTemplate = defaultTemplate
	}
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

// validateConfig cubre lo estructural, sin exigir credenciales: un archivo
// recién creado todavía no tiene API key y tiene que poder cargarse.
func validateConfig(config *Config) error {
	if config.MaxLength <= 0 {
		return errors.New("max_length debe ser mayor que 0")
	}
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	if config.Format != FormatPlain && config.Format != FormatConventional {
		return fmt.Errorf("format no soportado: %s", config.Format)
	}
	if config.DetailsStyle != StyleParagraph && config.DetailsStyle != StyleList {
		return fmt.Errorf("details_style no soportado: %s", config.DetailsStyle)
	}
	return nil
}

// ValidateGeneration valida todo lo que el pipeline de generación necesita.
// Cualquier valor inválido aborta antes de tocar la red.
func (c *Config) ValidateGeneration() error {
	if c.APIKey == "" {
		return domainerrors.NewValidationError("api_key", "no está configurada")
	}
	if c.BaseURL == "" {
		return domainerrors.NewValidationError("base_url", "no está configurada")
	}
	if c.Model == "" {
		return domainerrors.NewValidationError("model", "no está configurado")
	}
	if _, err := language.Parse(c.Language); err != nil {
		return domainerrors.NewValidationError("language", fmt.Sprintf("tag inválido: %s", c.Language))
	}
	if c.MaxLength < MinTitleLength {
		return domainerrors.NewValidationError("max_length", fmt.Sprintf("debe ser al menos %d", MinTitleLength))
	}
	if c.SuggestionsCount < MinSuggestions || c.SuggestionsCount > MaxSuggestions {
		return domainerrors.NewValidationError("suggestions_count", fmt.Sprintf("debe estar entre %d y %d", MinSuggestions, MaxSuggestions))
	}
	if c.Format != FormatPlain && c.Format != FormatConventional {
		return domainerrors.NewValidationError("format", fmt.Sprintf("valor no soportado: %s", c.Format))
	}
	if c.DetailsStyle != StyleParagraph && c.DetailsStyle != StyleList {
		return domainerrors.NewValidationError("details_style", fmt.Sprintf("valor no soportado: %s", c.DetailsStyle))
	}
	if c.TimeoutMs <= 0 {
		return domainerrors.NewValidationError("timeout_ms", "debe ser mayor que 0")
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return domainerrors.NewValidationError("temperature", "debe estar entre 0 y 2")
	}
	return nil
}
