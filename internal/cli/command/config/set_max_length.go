package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetMaxLengthCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-max-length",
		Usage: t.GetMessage("config_set_max_length_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "length",
				Aliases:  []string{"n"},
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			length := command.Int("length")
			if length < cfg.MinTitleLength {
				return fmt.Errorf("max_length debe ser al menos %d", cfg.MinTitleLength)
			}

			config.MaxLength = int(length)
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("max_length_configured", 0, map[string]interface{}{"Length": length}))
			return nil
		},
	}
}
