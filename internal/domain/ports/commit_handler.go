package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// CommitHandler resuelve qué hacer con las sugerencias generadas
// (selección interactiva, escritura del hook, etc).
type CommitHandler interface {
	HandleSuggestions(ctx context.Context, suggestions []models.CommitSuggestion) error
}
