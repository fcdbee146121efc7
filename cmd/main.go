package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Tomas-vilte/SmartCommit/internal/cli/command/config"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/command/handler"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/command/hook"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/command/suggest"
	"github.com/Tomas-vilte/SmartCommit/internal/cli/registry"
	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/Tomas-vilte/SmartCommit/internal/infrastructure/git"
	"github.com/Tomas-vilte/SmartCommit/internal/infrastructure/openai"
	"github.com/Tomas-vilte/SmartCommit/internal/logger"
	"github.com/Tomas-vilte/SmartCommit/internal/services"
	"github.com/Tomas-vilte/SmartCommit/internal/services/classify"
	"github.com/Tomas-vilte/SmartCommit/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfg.LoadEnvFile()

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides(cfgApp)

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	completer, err := openai.NewClient(openai.Options{
		BaseURL: cfgApp.BaseURL,
		APIKey:  cfgApp.APIKey,
		Timeout: time.Duration(cfgApp.TimeoutMs) * time.Millisecond,
		Proxy:   cfgApp.Proxy,
	})
	if err != nil {
		return nil, err
	}

	gitService := git.NewGitService()
	classifier := classify.NewClassifier(completer, classify.NewKeywordInferencer(), cfgApp.Model)
	commitService := services.NewCommitService(gitService, completer, classifier, cfgApp)
	commitHandler := handler.NewSuggestionHandler(gitService, translations)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("suggest", suggest.NewSuggestCommandFactory(commitService, commitHandler)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'suggest': %w", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	if err := registerCommand.Register("hook", hook.NewHookCommandFactory(commitService, gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'hook': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "smart-commit",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("debug_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   translations.GetMessage("verbose_flag_usage", 0, nil),
			},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger.Initialize(command.Bool("debug"), command.Bool("verbose"))
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
