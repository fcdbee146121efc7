package classify

import (
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/regex"
)

var _ ports.CategoryInferencer = (*KeywordInferencer)(nil)

// KeywordInferencer infiere la categoría de un tipo convencional con
// heurísticas de keywords en inglés y chino. Primero intenta el match
// exacto por nombre; después busca keywords en nombre + descripción.
type KeywordInferencer struct{}

func NewKeywordInferencer() *KeywordInferencer {
	return &KeywordInferencer{}
}

var exactCategories = map[string]models.TypeCategory{
	"feat":        models.CategoryFeat,
	"feature":     models.CategoryFeat,
	"fix":         models.CategoryFix,
	"bugfix":      models.CategoryFix,
	"hotfix":      models.CategoryFix,
	"refactor":    models.CategoryRefactor,
	"perf":        models.CategoryPerf,
	"performance": models.CategoryPerf,
}

func (k *KeywordInferencer) InferCategory(name, description string) models.TypeCategory {
	if category, ok := exactCategories[strings.ToLower(strings.TrimSpace(name))]; ok {
		return category
	}

	text := name + " " + description
	switch {
	case regex.RefactorKeywords.MatchString(text):
		return models.CategoryRefactor
	case regex.PerfKeywords.MatchString(text):
		return models.CategoryPerf
	case regex.FixKeywords.MatchString(text):
		return models.CategoryFix
	case regex.FeatKeywords.MatchString(text):
		return models.CategoryFeat
	default:
		return models.CategoryOther
	}
}

// CategoryWeight devuelve el peso fijo de cada categoría para el scoring.
func CategoryWeight(category models.TypeCategory) float64 {
	switch category {
	case models.CategoryRefactor:
		return 1.10
	case models.CategoryFeat:
		return 1.00
	case models.CategoryFix:
		return 0.80
	case models.CategoryPerf:
		return 0.75
	default:
		return 0.95
	}
}
