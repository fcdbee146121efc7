package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// GitService es la frontera de solo lectura/escritura con el binario git.
type GitService interface {
	// IsRepository indica si el directorio actual está dentro de un repo git.
	IsRepository(ctx context.Context) bool

	// GetStagedChanges devuelve el diff staged y la lista de archivos,
	// aplicando los patrones de exclusión. Devuelve (nil, nil) cuando no
	// hay nada staged. Es idempotente y no modifica el working tree.
	GetStagedChanges(ctx context.Context, excludePatterns []string) (*models.CommitInfo, error)

	// CreateCommit crea un commit con el mensaje dado.
	CreateCommit(ctx context.Context, message string) error

	// HooksDir devuelve el directorio de hooks del repositorio actual.
	HooksDir(ctx context.Context) (string, error)
}
