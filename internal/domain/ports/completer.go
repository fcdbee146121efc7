package ports

import (
	"context"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

// StreamCallback recibe cada delta de texto a medida que llega del
// transporte, antes del reensamblado final.
type StreamCallback func(models.StreamEvent)

// Completer es la frontera con el endpoint chat-completions. La emisión en
// vivo por onEvent y el resultado agregado no son excluyentes: ambos
// reflejan los mismos datos.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest, onEvent StreamCallback) (*models.CompletionResponse, error)
}
