package services

import (
	"context"
	"sync"

	"github.com/Tomas-vilte/SmartCommit/internal/config"
	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/logger"
	"github.com/Tomas-vilte/SmartCommit/internal/regex"
	"github.com/Tomas-vilte/SmartCommit/internal/services/classify"
	"github.com/Tomas-vilte/SmartCommit/internal/services/prompt"
	"github.com/Tomas-vilte/SmartCommit/internal/services/sanitize"
)

var _ ports.CommitService = (*CommitService)(nil)

// typeJudge es el pase de clasificación convencional. Está detrás de una
// interfaz para poder testear el pipeline sin red.
type typeJudge interface {
	Classify(ctx context.Context, diff string, catalog []prompt.TypeEntry) (*models.JudgeReport, error)
}

var _ typeJudge = (*classify.Classifier)(nil)

// CommitService orquesta el pipeline completo: cambios staged → prompt →
// completions (fan-out) → saneo → clasificación/armonizado convencional →
// enforcement de locale y scope.
type CommitService struct {
	git        ports.GitService
	completer  ports.Completer
	judge      typeJudge
	cfg        *config.Config
	lastReport *models.JudgeReport
	lastUsage  models.Usage
}

func NewCommitService(git ports.GitService, completer ports.Completer, judge typeJudge, cfg *config.Config) *CommitService {
	return &CommitService{
		git:       git,
		completer: completer,
		judge:     judge,
		cfg:       cfg,
	}
}

// LastJudgeReport devuelve el reporte del último pase de clasificación, o
// nil si no corrió o falló. Solo para observabilidad.
func (s *CommitService) LastJudgeReport() *models.JudgeReport {
	return s.lastReport
}

// LastUsage devuelve los tokens consumidos por la última generación,
// sumados sobre todos los requests de generación y reescritura.
func (s *CommitService) LastUsage() models.Usage {
	return s.lastUsage
}

// GenerateSuggestions genera count mensajes de commit. El resultado es una
// lista de sugerencias distintas entre sí, en orden determinístico. onEvent
// puede ser nil; cuando no lo es, los deltas llegan en vivo etiquetados con
// la fase que los produjo.
func (s *CommitService) GenerateSuggestions(ctx context.Context, count int, onEvent ports.StreamCallback) ([]models.CommitSuggestion, error) {
	if err := s.cfg.ValidateGeneration(); err != nil {
		return nil, err
	}
	if count < config.MinSuggestions || count > config.MaxSuggestions {
		return nil, domainerrors.NewValidationError("count", "fuera de rango")
	}

	info, err := s.git.GetStagedChanges(ctx, s.cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, &domainerrors.NoChangesError{}
	}

	conventional := s.cfg.Format == config.FormatConventional
	catalog := prompt.ResolveCatalog(s.cfg.ConventionalTypes)

	log := logger.FromContext(ctx)
	log.Debug("cambios staged", "files", len(info.Files))

	// La falla de clasificación no es fatal: se cae a la generación sin
	// tipo fijado.
	lockedType := ""
	s.lastReport = nil
	s.lastUsage = models.Usage{}
	if conventional && s.judge != nil {
		report, judgeErr := s.judge.Classify(ctx, info.Diff, catalog)
		if judgeErr == nil && report != nil {
			s.lastReport = report
			lockedType = report.SelectedType
			log.Debug("tipo convencional fijado", "type", lockedType)
		} else if judgeErr != nil {
			log.Debug("clasificación falló, se genera sin tipo fijado", "error", judgeErr)
		}
	}

	opts := prompt.Options{
		Locale:             s.cfg.Language,
		MaxLength:          s.cfg.MaxLength,
		Conventional:       conventional,
		IncludeDetails:     s.cfg.IncludeDetails,
		DetailsStyle:       s.cfg.DetailsStyle,
		Files:              info.Files,
		TypeCatalog:        catalog,
		Template:           s.cfg.ConventionalTemplate,
		LockedType:         lockedType,
		ScopePreferred:     s.cfg.ConventionalScope,
		CustomInstructions: s.cfg.CustomInstructions,
	}

	suggestions, err := s.generatePass(ctx, opts, info.Diff, count, onEvent)
	if err != nil {
		return nil, err
	}
	suggestions = s.harmonizeLockedType(suggestions, lockedType)

	suggestions, err = s.enforceScope(ctx, suggestions, opts, info.Diff, count, onEvent)
	if err != nil {
		return nil, err
	}

	suggestions = s.enforceLocale(ctx, suggestions, onEvent)

	if len(suggestions) == 0 {
		return nil, &domainerrors.EmptyResultError{}
	}
	return suggestions, nil
}

// generatePass ejecuta una pasada de generación completa: fan-out de count
// requests independientes, saneo y deduplicación.
func (s *CommitService) generatePass(ctx context.Context, opts prompt.Options, diff string, count int, onEvent ports.StreamCallback) ([]models.CommitSuggestion, error) {
	systemPrompt := prompt.Build(opts)
	responses, err := s.fanOut(ctx, systemPrompt, diff, count, tagPhase(onEvent, models.PhaseMessageGeneration))
	if err != nil {
		return nil, err
	}

	var suggestions []models.CommitSuggestion
	for _, response := range responses {
		for _, choice := range response.Choices {
			if suggestion, ok := sanitize.Sanitize(choice.Content, s.cfg.IncludeDetails, s.cfg.DetailsStyle); ok {
				suggestions = append(suggestions, suggestion)
			}
		}
	}
	return dedupe(suggestions), nil
}

// fanOut dispara count requests concurrentes e independientes y junta los
// resultados en el orden de los requests, no en el de llegada. La falla de
// cualquier request aborta el batch: una generación parcial no sirve.
func (s *CommitService) fanOut(ctx context.Context, systemPrompt, diff string, count int, onEvent ports.StreamCallback) ([]*models.CompletionResponse, error) {
	// El callback compartido se entrega serializado: los streams corren en
	// paralelo pero el consumidor ve un evento a la vez.
	onEvent = serialize(onEvent)

	responses := make([]*models.CompletionResponse, count)
	errs := make([]error, count)

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			req := models.CompletionRequest{
				Model: s.cfg.Model,
				Messages: []models.ChatMessage{
					{Role: models.RoleSystem, Content: systemPrompt},
					{Role: models.RoleUser, Content: diff},
				},
				Temperature: s.cfg.Temperature,
				Stream:      onEvent != nil,
			}
			responses[slot], errs[slot] = s.completer.Complete(ctx, req, onEvent)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for _, response := range responses {
		s.lastUsage.Add(response.Usage)
	}
	return responses, nil
}

// harmonizeLockedType fuerza el prefijo del tipo fijado en todos los
// títulos: reemplaza un tipo distinto conservando el scope, y antepone el
// prefijo cuando el título no trae ninguno.
func (s *CommitService) harmonizeLockedType(suggestions []models.CommitSuggestion, lockedType string) []models.CommitSuggestion {
	if lockedType == "" {
		return suggestions
	}
	for i, suggestion := range suggestions {
		matches := regex.ConventionalPrefix.FindStringSubmatch(suggestion.Title)
		if matches == nil {
			suggestions[i].Title = lockedType + ": " + suggestion.Title
			continue
		}
		if matches[1] == lockedType {
			continue
		}
		rebuilt := lockedType
		if matches[2] != "" {
			rebuilt += matches[2]
		}
		if matches[4] != "" {
			rebuilt += matches[4]
		}
		suggestions[i].Title = rebuilt + ": " + matches[5]
	}
	return dedupe(suggestions)
}

// dedupe aplica semántica de conjunto conservando el orden de inserción.
func dedupe(suggestions []models.CommitSuggestion) []models.CommitSuggestion {
	seen := make(map[string]struct{}, len(suggestions))
	result := make([]models.CommitSuggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		key := suggestion.Message()
		if _, duplicated := seen[key]; duplicated {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, suggestion)
	}
	return result
}

// serialize envuelve el callback con un mutex para que las goroutines del
// fan-out nunca lo invoquen en paralelo.
func serialize(onEvent ports.StreamCallback) ports.StreamCallback {
	if onEvent == nil {
		return nil
	}
	var mu sync.Mutex
	return func(event models.StreamEvent) {
		mu.Lock()
		defer mu.Unlock()
		onEvent(event)
	}
}

// tagPhase envuelve el callback etiquetando cada evento con la fase del
// pipeline que lo emitió.
func tagPhase(onEvent ports.StreamCallback, phase models.GenerationPhase) ports.StreamCallback {
	if onEvent == nil {
		return nil
	}
	return func(event models.StreamEvent) {
		event.Phase = phase
		onEvent(event)
	}
}
