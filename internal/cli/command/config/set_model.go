package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-model",
		Usage: t.GetMessage("config_set_model_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			config.Model = command.String("model")
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("model_configured", 0, map[string]interface{}{"Model": config.Model}))
			return nil
		},
	}
}
