package config

import (
	"context"
	"fmt"
	"net/url"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetURLCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-url",
		Usage: t.GetMessage("config_set_url_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			baseURL := command.String("url")
			parsed, err := url.Parse(baseURL)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return fmt.Errorf("URL inválida: %s", baseURL)
			}

			config.BaseURL = baseURL
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("url_configured", 0, map[string]interface{}{"URL": baseURL}))
			return nil
		},
	}
}
