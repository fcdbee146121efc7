package config

import (
	"context"
	"fmt"
	"strings"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/Tomas-vilte/SmartCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.Info.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("  language:          %s\n", config.Language)
			fmt.Printf("  format:            %s\n", config.Format)
			fmt.Printf("  model:             %s\n", config.Model)
			fmt.Printf("  base_url:          %s\n", config.BaseURL)
			fmt.Printf("  api_key:           %s\n", maskKey(config.APIKey))
			fmt.Printf("  max_length:        %d\n", config.MaxLength)
			fmt.Printf("  suggestions_count: %d\n", config.SuggestionsCount)
			fmt.Printf("  include_details:   %t\n", config.IncludeDetails)
			fmt.Printf("  details_style:     %s\n", config.DetailsStyle)
			fmt.Printf("  conventional_scope: %t\n", config.ConventionalScope)
			fmt.Printf("  timeout_ms:        %d\n", config.TimeoutMs)
			if config.Proxy != "" {
				fmt.Printf("  proxy:             %s\n", config.Proxy)
			}
			if len(config.ExcludePatterns) > 0 {
				fmt.Printf("  exclude_patterns:  %s\n", strings.Join(config.ExcludePatterns, ", "))
			}
			return nil
		},
	}
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
