package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetFormatCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-format",
		Usage: t.GetMessage("config_set_format_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format := command.String("format")
			if format != cfg.FormatPlain && format != cfg.FormatConventional {
				return fmt.Errorf("%s", t.GetMessage("invalid_format", 0, nil))
			}

			config.Format = format
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("format_configured", 0, map[string]interface{}{"Format": format}))
			return nil
		},
	}
}
