package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations carga los mensajes embebidos por defecto y los archivos
// locales opcionales (locales/active.*.toml). localesPath puede estar vacío.
func NewTranslations(defaultLang, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}
	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate commit messages for your staged changes with an LLM"

	[app_description]
	other = "smart-commit inspects the staged diff, asks a chat-completions endpoint for commit message suggestions and lets you pick one or injects it through a git hook"

	[help_command_usage]
	other = "Show help"

	[suggest_command_usage]
	other = "Suggest commit messages for the staged changes"

	[suggest_command_description]
	other = "Analyze your staged changes and suggest commit messages"

	[suggest_count_flag_usage]
	other = "Number of suggestions to generate (1-5)"

	[suggest_lang_flag_usage]
	other = "Language for the commit messages (e.g. en, es, zh-CN)"

	[suggest_format_flag_usage]
	other = "Commit message format: plain or conventional"

	[suggest_stream_flag_usage]
	other = "Print model output live while it is being generated"

	[suggest_no_details_flag_usage]
	other = "Generate only a title, without a message body"

	[invalid_suggestions_count]
	other = "Number of suggestions must be between {{.Min}} and {{.Max}}"

	[analyzing_changes]
	other = "Analyzing staged changes..."

	[suggestion_generation_error]
	other = "Could not generate suggestions: {{.Error}}"

	[no_staged_changes]
	other = "No staged changes to commit.\nUse 'git add' to stage your changes first"

	[check_network]
	other = "Check your network connection and the configured base URL"

	[timeout_hint]
	other = "The request timed out. Try increasing timeout_ms in your configuration"

	[select_suggestion]
	other = "Select a commit message"

	[operation_cancelled]
	other = "Operation cancelled"

	[commit_created]
	other = "Commit created successfully with message:"

	[unexpected_error_report]
	other = "Unexpected error (version {{.Version}}): {{.Error}}\nPlease report it at https://github.com/Tomas-vilte/SmartCommit/issues"

	[config_command_usage]
	other = "Manage smart-commit configuration"

	[config_init_usage]
	other = "Create a default configuration file"

	[config_initialized]
	other = "Configuration created at {{.Path}}"

	[config_show_usage]
	other = "Show the current configuration"

	[current_config]
	other = "Current configuration"

	[config_set_lang_usage]
	other = "Set the language for generated commit messages"

	[config_set_lang_flag_usage]
	other = "Language tag (e.g. en, es, zh-CN)"

	[unsupported_language]
	other = "Unsupported language tag"

	[language_configured]
	other = "Language set to {{.Lang}}"

	[config_set_api_key_usage]
	other = "Set the API key for the completion endpoint"

	[api_key_configured]
	other = "API key configured"

	[config_set_model_usage]
	other = "Set the model id"

	[model_configured]
	other = "Model set to {{.Model}}"

	[config_set_url_usage]
	other = "Set the base URL of the completion endpoint"

	[url_configured]
	other = "Base URL set to {{.URL}}"

	[config_set_format_usage]
	other = "Set the commit message format (plain or conventional)"

	[invalid_format]
	other = "Format must be 'plain' or 'conventional'"

	[format_configured]
	other = "Format set to {{.Format}}"

	[config_set_max_length_usage]
	other = "Set the maximum title length"

	[max_length_configured]
	other = "Maximum title length set to {{.Length}}"

	[token_usage]
	other = "{{.Tokens}} tokens used"

	[token_usage_with_cost]
	other = "{{.Tokens}} tokens used (~{{.Cost}})"

	[debug_flag_usage]
	other = "Enable debug logging"

	[verbose_flag_usage]
	other = "Enable verbose logging"

	[hook_command_usage]
	other = "Manage the prepare-commit-msg hook"

	[hook_install_usage]
	other = "Install the prepare-commit-msg hook in this repository"

	[hook_uninstall_usage]
	other = "Remove the prepare-commit-msg hook installed by smart-commit"

	[hook_run_usage]
	other = "Generate a message and write it to the commit message file (used by the hook)"

	[hook_installed]
	other = "Hook installed at {{.Path}}"

	[hook_uninstalled]
	other = "Hook removed"

	[hook_not_ours]
	other = "The prepare-commit-msg hook was not installed by smart-commit, not touching it"

	[hook_not_found]
	other = "No prepare-commit-msg hook is installed"

	[not_a_repository]
	other = "Not inside a git repository"

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"

	[modified_files_count]
	one = "{{.Count}} file modified"
	other = "{{.Count}} files modified"
	`
