package services

import (
	"context"
	"strings"
	"unicode"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/logger"
	"github.com/Tomas-vilte/SmartCommit/internal/regex"
	"github.com/Tomas-vilte/SmartCommit/internal/services/prompt"
	"github.com/Tomas-vilte/SmartCommit/internal/services/sanitize"
	"golang.org/x/text/language"
)

// enforceScope filtra las sugerencias a las que tienen scope convencional
// cuando el scope está preferido y el template lo soporta. Si ninguna
// califica hace exactamente un retry con el requisito duro; si el retry
// tampoco produce scope, devuelve los resultados del retry sin filtrar.
func (s *CommitService) enforceScope(ctx context.Context, suggestions []models.CommitSuggestion, opts prompt.Options, diff string, count int, onEvent ports.StreamCallback) ([]models.CommitSuggestion, error) {
	if !opts.Conventional || !s.cfg.ConventionalScope || !templateSupportsScope(s.cfg.ConventionalTemplate) {
		return suggestions, nil
	}

	if scoped := filterScoped(suggestions); len(scoped) > 0 {
		return scoped, nil
	}

	logger.FromContext(ctx).Debug("ningún título trajo scope, reintentando con requisito duro")
	opts.RequireScope = true
	retried, err := s.generatePass(ctx, opts, diff, count, onEvent)
	if err != nil {
		return nil, err
	}
	retried = s.harmonizeLockedType(retried, opts.LockedType)

	if scoped := filterScoped(retried); len(scoped) > 0 {
		return scoped, nil
	}
	return retried, nil
}

func filterScoped(suggestions []models.CommitSuggestion) []models.CommitSuggestion {
	var scoped []models.CommitSuggestion
	for _, suggestion := range suggestions {
		if regex.ConventionalScoped.MatchString(suggestion.Title) {
			scoped = append(scoped, suggestion)
		}
	}
	return scoped
}

func templateSupportsScope(template string) bool {
	if template == "" {
		return true
	}
	return strings.Contains(template, "<scope>")
}

// enforceLocale reescribe los títulos que quedaron en otro idioma cuando el
// locale configurado es una variante de chino. Es best-effort: cualquier
// falla deja el mensaje original intacto.
func (s *CommitService) enforceLocale(ctx context.Context, suggestions []models.CommitSuggestion, onEvent ports.StreamCallback) []models.CommitSuggestion {
	if !isChineseVariant(s.cfg.Language) {
		return suggestions
	}

	for i, suggestion := range suggestions {
		subject := titleSubject(suggestion.Title)
		if containsCJK(subject) {
			continue
		}
		if rewritten, ok := s.rewriteTitle(ctx, suggestion.Title, onEvent); ok {
			suggestions[i].Title = rewritten
		}
	}
	return dedupe(suggestions)
}

// rewriteTitle pide al modelo traducir solo el sujeto del título,
// conservando el prefijo convencional al pie de la letra.
func (s *CommitService) rewriteTitle(ctx context.Context, title string, onEvent ports.StreamCallback) (string, bool) {
	wrapped := tagPhase(onEvent, models.PhaseTitleRewrite)
	req := models.CompletionRequest{
		Model: s.cfg.Model,
		Messages: []models.ChatMessage{
			{Role: models.RoleSystem, Content: "Translate the subject of the following commit title into " + s.cfg.Language +
				". If the title has a conventional commit prefix (type and optional scope), keep that prefix verbatim and translate only the subject after it. " +
				"Respond with ONLY the rewritten title, nothing else."},
			{Role: models.RoleUser, Content: title},
		},
		Temperature: s.cfg.Temperature,
		Stream:      wrapped != nil,
	}

	resp, err := s.completer.Complete(ctx, req, wrapped)
	if err != nil || len(resp.Choices) == 0 {
		return "", false
	}
	s.lastUsage.Add(resp.Usage)

	rewritten, ok := sanitize.Sanitize(resp.Choices[0].Content, false, s.cfg.DetailsStyle)
	if !ok {
		return "", false
	}
	return rewritten.Title, true
}

// titleSubject devuelve el texto después del prefijo convencional, o el
// título entero si no hay prefijo.
func titleSubject(title string) string {
	if matches := regex.ConventionalPrefix.FindStringSubmatch(title); matches != nil {
		return matches[5]
	}
	return title
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// isChineseVariant reconoce cualquier tag BCP-47 cuyo idioma base sea zh.
func isChineseVariant(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base.String() == "zh"
}
