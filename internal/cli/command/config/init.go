package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_initialized", 0, map[string]interface{}{
				"Path": config.PathFile,
			}))
			return nil
		},
	}
}
