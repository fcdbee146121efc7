// Package hook instala y ejecuta el hook prepare-commit-msg que inyecta el
// mensaje generado directamente en el archivo de commit.
package hook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfg "github.com/Tomas-vilte/SmartCommit/internal/config"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/urfave/cli/v3"
)

const hookName = "prepare-commit-msg"

// hookMarker identifica los hooks escritos por nosotros; uninstall no toca
// hooks ajenos.
const hookMarker = "# installed by smart-commit"

const hookScript = `#!/bin/sh
` + hookMarker + `
# $1 = commit message file, $2 = source (merge, squash, message, ...)
case "$2" in
  merge|squash|message) exit 0 ;;
esac
smart-commit hook run "$1" || true
`

type HookCommandFactory struct {
	commitService ports.CommitService
	gitService    ports.GitService
}

func NewHookCommandFactory(commitService ports.CommitService, gitService ports.GitService) *HookCommandFactory {
	return &HookCommandFactory{
		commitService: commitService,
		gitService:    gitService,
	}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: t.GetMessage("hook_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newInstallCommand(t),
			f.newUninstallCommand(t),
			f.newRunCommand(t, config),
		},
	}
}

func (f *HookCommandFactory) newInstallCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: t.GetMessage("hook_install_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if !f.gitService.IsRepository(ctx) {
				return fmt.Errorf("%s", t.GetMessage("not_a_repository", 0, nil))
			}
			hooksDir, err := f.gitService.HooksDir(ctx)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(hooksDir, 0755); err != nil {
				return fmt.Errorf("error al crear el directorio de hooks: %w", err)
			}

			path := filepath.Join(hooksDir, hookName)
			if err := os.WriteFile(path, []byte(hookScript), 0755); err != nil {
				return fmt.Errorf("error al escribir el hook: %w", err)
			}

			fmt.Println(t.GetMessage("hook_installed", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}

func (f *HookCommandFactory) newUninstallCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "uninstall",
		Usage: t.GetMessage("hook_uninstall_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if !f.gitService.IsRepository(ctx) {
				return fmt.Errorf("%s", t.GetMessage("not_a_repository", 0, nil))
			}
			hooksDir, err := f.gitService.HooksDir(ctx)
			if err != nil {
				return err
			}

			path := filepath.Join(hooksDir, hookName)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				fmt.Println(t.GetMessage("hook_not_found", 0, nil))
				return nil
			}
			if err != nil {
				return err
			}
			if !strings.Contains(string(content), hookMarker) {
				return fmt.Errorf("%s", t.GetMessage("hook_not_ours", 0, nil))
			}

			if err := os.Remove(path); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("hook_uninstalled", 0, nil))
			return nil
		},
	}
}

// newRunCommand genera una única sugerencia sin interacción y la escribe al
// principio del archivo de mensaje que git le pasa al hook.
func (f *HookCommandFactory) newRunCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     t.GetMessage("hook_run_usage", 0, nil),
		ArgsUsage: "<commit-msg-file>",
		Action: func(ctx context.Context, command *cli.Command) error {
			args := command.Args()
			if args.Len() < 1 {
				return fmt.Errorf("falta el archivo de mensaje de commit")
			}
			messageFile := args.First()

			suggestions, err := f.commitService.GenerateSuggestions(ctx, 1, nil)
			if err != nil {
				return err
			}

			existing, err := os.ReadFile(messageFile)
			if err != nil {
				return fmt.Errorf("error al leer el archivo de mensaje: %w", err)
			}

			message := suggestions[0].Message() + "\n"
			if len(existing) > 0 {
				message += "\n" + string(existing)
			}
			if err := os.WriteFile(messageFile, []byte(message), 0644); err != nil {
				return fmt.Errorf("error al escribir el archivo de mensaje: %w", err)
			}
			return nil
		},
	}
}
