package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOptions() Options {
	return Options{
		Locale:       "en",
		MaxLength:    72,
		Conventional: false,
		DetailsStyle: "list",
		Files:        []string{"main.go", "config.go"},
	}
}

func TestBuild_ContainsRequiredClauses(t *testing.T) {
	locales := []string{"en", "es", "zh-CN"}
	lengths := []int{50, 72, 100}

	for _, locale := range locales {
		for _, maxLength := range lengths {
			t.Run(fmt.Sprintf("%s_%d", locale, maxLength), func(t *testing.T) {
				opts := baseOptions()
				opts.Locale = locale
				opts.MaxLength = maxLength

				result := Build(opts)

				assert.Contains(t, result, fmt.Sprintf("Message language: %s", locale))
				assert.Contains(t, result, fmt.Sprintf("maximum of %d characters", maxLength))
				assert.Contains(t, result, "ONLY the message text")
			})
		}
	}
}

func TestBuild_FileListing(t *testing.T) {
	t.Run("lists all files when few", func(t *testing.T) {
		opts := baseOptions()
		result := Build(opts)

		assert.Contains(t, result, "- main.go")
		assert.Contains(t, result, "- config.go")
		assert.NotContains(t, result, "more")
	})

	t.Run("caps at 12 files and summarizes the rest", func(t *testing.T) {
		opts := baseOptions()
		opts.Files = nil
		for i := 0; i < 15; i++ {
			opts.Files = append(opts.Files, fmt.Sprintf("file%02d.go", i))
		}

		result := Build(opts)

		assert.Contains(t, result, "file11.go")
		assert.NotContains(t, result, "file12.go")
		assert.Contains(t, result, "and 3 more")
	})

	t.Run("omits the section entirely without files", func(t *testing.T) {
		opts := baseOptions()
		opts.Files = nil

		result := Build(opts)

		assert.NotContains(t, result, "Changed files")
		assert.NotContains(t, result, "\n\n\n")
	})
}

func TestBuild_TypeInstructions(t *testing.T) {
	t.Run("plain mode has no type catalog", func(t *testing.T) {
		result := Build(baseOptions())

		assert.NotContains(t, result, "conventional commit type")
		assert.Contains(t, result, "Output format:\n<commit message>")
	})

	t.Run("conventional mode lists the default catalog", func(t *testing.T) {
		opts := baseOptions()
		opts.Conventional = true
		opts.Template = "<type>(<scope>): <subject>"

		result := Build(opts)

		for _, entry := range DefaultCatalog() {
			assert.Contains(t, result, "- "+entry.Name+": ")
		}
		assert.Contains(t, result, "<type>(<scope>): <subject>")
	})

	t.Run("locked type replaces the catalog", func(t *testing.T) {
		opts := baseOptions()
		opts.Conventional = true
		opts.LockedType = "refactor"

		result := Build(opts)

		assert.Contains(t, result, `use "refactor" as the conventional commit type`)
		assert.Contains(t, result, "do not choose a different one")
		assert.NotContains(t, result, "Choose the single conventional commit type")
	})

	t.Run("scope preference and hard requirement wording", func(t *testing.T) {
		opts := baseOptions()
		opts.Conventional = true
		opts.ScopePreferred = true

		result := Build(opts)
		assert.Contains(t, result, "Prefer including a conventional scope")
		assert.NotContains(t, result, "HARD REQUIREMENT")

		opts.RequireScope = true
		result = Build(opts)
		assert.Contains(t, result, "HARD REQUIREMENT")
	})
}

func TestBuild_Deterministic(t *testing.T) {
	opts := baseOptions()
	opts.Conventional = true
	opts.TypeCatalog = ResolveCatalog(map[string]string{
		"feat":   "a feature",
		"fix":    "a fix",
		"custom": "something else",
	})

	first := Build(opts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Build(opts))
	}
}

func TestBuild_CustomInstructionsLast(t *testing.T) {
	opts := baseOptions()
	opts.CustomInstructions = "Always mention the ticket number"

	result := Build(opts)

	require.True(t, strings.HasSuffix(result, "Always mention the ticket number"))
}

func TestResolveCatalog(t *testing.T) {
	t.Run("empty map falls back to default catalog", func(t *testing.T) {
		catalog := ResolveCatalog(nil)
		require.Len(t, catalog, 11)
		assert.Equal(t, "feat", catalog[0].Name)
		assert.Equal(t, "revert", catalog[10].Name)
	})

	t.Run("known types keep canonical order, unknown go last alphabetically", func(t *testing.T) {
		catalog := ResolveCatalog(map[string]string{
			"zz":   "custom z",
			"fix":  "a fix",
			"aa":   "custom a",
			"feat": "a feature",
		})

		names := make([]string, 0, len(catalog))
		for _, entry := range catalog {
			names = append(names, entry.Name)
		}
		assert.Equal(t, []string{"feat", "fix", "aa", "zz"}, names)
	})
}
