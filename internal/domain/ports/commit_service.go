package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// CommitService genera sugerencias de mensajes de commit a partir de los
// cambios staged. El resultado es una secuencia de mensajes distintos entre
// sí, en orden determinístico.
type CommitService interface {
	GenerateSuggestions(ctx context.Context, count int, onEvent StreamCallback) ([]models.CommitSuggestion, error)
}
