package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetAPIKeyCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-api-key",
		Usage: t.GetMessage("config_set_api_key_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			config.APIKey = command.String("key")
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("api_key_configured", 0, nil))
			return nil
		},
	}
}
