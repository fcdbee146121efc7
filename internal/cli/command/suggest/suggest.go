package suggest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/SmartCommit/internal/config"
	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/i18n"
	"github.com/Tomas-vilte/SmartCommit/internal/services/cost"
	"github.com/Tomas-vilte/SmartCommit/internal/ui"
	"github.com/Tomas-vilte/SmartCommit/internal/version"
	"github.com/urfave/cli/v3"
)

type SuggestCommandFactory struct {
	commitService ports.CommitService
	commitHandler ports.CommitHandler
}

func NewSuggestCommandFactory(commitService ports.CommitService, commitHandler ports.CommitHandler) *SuggestCommandFactory {
	return &SuggestCommandFactory{
		commitService: commitService,
		commitHandler: commitHandler,
	}
}

func (f *SuggestCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "suggest",
		Aliases:     []string{"s"},
		Usage:       t.GetMessage("suggest_command_usage", 0, nil),
		Description: t.GetMessage("suggest_command_description", 0, nil),
		Flags:       f.createFlags(cfg, t),
		Action:      f.createAction(cfg, t),
	}
}

func (f *SuggestCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   int64(cfg.SuggestionsCount),
			Usage:   t.GetMessage("suggest_count_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("suggest_lang_flag_usage", 0, nil),
			Value:   cfg.Language,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("suggest_format_flag_usage", 0, nil),
			Value:   cfg.Format,
		},
		&cli.BoolFlag{
			Name:  "stream",
			Usage: t.GetMessage("suggest_stream_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-details",
			Usage: t.GetMessage("suggest_no_details_flag_usage", 0, nil),
		},
	}
}

func (f *SuggestCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		count := command.Int("count")
		if count < config.MinSuggestions || count > config.MaxSuggestions {
			msg := t.GetMessage("invalid_suggestions_count", 0, map[string]interface{}{
				"Min": config.MinSuggestions,
				"Max": config.MaxSuggestions,
			})
			return fmt.Errorf("%s", msg)
		}

		cfg.Language = command.String("lang")
		cfg.Format = command.String("format")
		if command.Bool("no-details") {
			cfg.IncludeDetails = false
		}

		var onEvent ports.StreamCallback
		var printer *ui.StreamPrinter
		var spin *ui.Spinner

		if command.Bool("stream") {
			printer = ui.NewStreamPrinter()
			onEvent = printer.Print
		} else {
			spin = ui.NewSpinner(t.GetMessage("analyzing_changes", 0, nil))
			spin.Start()
		}

		suggestions, err := f.commitService.GenerateSuggestions(ctx, int(count), onEvent)
		if spin != nil {
			spin.Stop()
		}
		if printer != nil {
			printer.Finish()
		}
		if err != nil {
			return translateError(err, t)
		}

		if command.Bool("verbose") {
			if judged, ok := f.commitService.(interface{ LastJudgeReport() *models.JudgeReport }); ok {
				ui.PrintJudgeReport(judged.LastJudgeReport())
			}
		}
		f.printUsage(t, cfg.Model)

		return f.commitHandler.HandleSuggestions(ctx, suggestions)
	}
}

// printUsage muestra los tokens consumidos y el costo estimado cuando el
// servicio los expone. Best-effort: sin usage no se imprime nada.
func (f *SuggestCommandFactory) printUsage(t *i18n.Translations, model string) {
	metered, ok := f.commitService.(interface{ LastUsage() models.Usage })
	if !ok {
		return
	}
	usage := metered.LastUsage()
	if usage.TotalTokens == 0 {
		return
	}

	if amount, priced := cost.Estimate(model, usage); priced {
		ui.Dim.Println(t.GetMessage("token_usage_with_cost", 0, map[string]interface{}{
			"Tokens": usage.TotalTokens,
			"Cost":   cost.FormatUSD(amount),
		}))
		return
	}
	ui.Dim.Println(t.GetMessage("token_usage", 0, map[string]interface{}{"Tokens": usage.TotalTokens}))
}

// translateError convierte los errores conocidos del pipeline en mensajes
// de una línea accionables para el usuario.
func translateError(err error, t *i18n.Translations) error {
	var noChanges *domainerrors.NoChangesError
	if errors.As(err, &noChanges) {
		return fmt.Errorf("%s", t.GetMessage("no_staged_changes", 0, nil))
	}
	var transport *domainerrors.TransportError
	if errors.As(err, &transport) {
		return fmt.Errorf("%v\n%s", err, t.GetMessage("check_network", 0, nil))
	}
	var timeout *domainerrors.TimeoutError
	if errors.As(err, &timeout) {
		return fmt.Errorf("%v\n%s", err, t.GetMessage("timeout_hint", 0, nil))
	}
	var empty *domainerrors.EmptyResultError
	if errors.As(err, &empty) {
		return fmt.Errorf("%v", err)
	}
	var validation *domainerrors.ValidationError
	var api *domainerrors.APIError
	if errors.As(err, &validation) || errors.As(err, &api) {
		msg := t.GetMessage("suggestion_generation_error", 0, map[string]interface{}{"Error": err})
		return fmt.Errorf("%s", msg)
	}
	// Un error fuera de la taxonomía conocida: se reporta con versión y
	// puntero para levantar un issue.
	return fmt.Errorf("%s", t.GetMessage("unexpected_error_report", 0, map[string]interface{}{
		"Version": version.Version,
		"Error":   err,
	}))
}
