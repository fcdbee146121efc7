package ports

import "github.com/Tomas-vilte/SmartCommit/internal/domain/models"

// CategoryInferencer infiere la categoría de peso de un tipo convencional a
// partir de su nombre y descripción. Es una estrategia intercambiable: la
// heurística por defecto usa keywords, pero el scoring no depende de cómo
// se infiere.
type CategoryInferencer interface {
	InferCategory(name, description string) models.TypeCategory
}
