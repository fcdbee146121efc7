package models

type (
	// ChatMessage es un mensaje del protocolo chat-completions.
	ChatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	// CompletionRequest describe una llamada al endpoint /chat/completions.
	// Temperature se omite del body cuando es nil.
	CompletionRequest struct {
		Model       string        `json:"model"`
		Messages    []ChatMessage `json:"messages"`
		N           int           `json:"n,omitempty"`
		Temperature *float64      `json:"temperature,omitempty"`
		Stream      bool          `json:"stream"`
		MaxTokens   int           `json:"max_tokens,omitempty"`
	}

	// CompletionChoice es una alternativa de respuesta ya reensamblada.
	// Index identifica la alternativa dentro de una misma respuesta; los
	// fragmentos streaming del mismo índice se concatenan en orden de llegada.
	CompletionChoice struct {
		Index            int
		Role             string
		Content          string
		ReasoningContent string
		FinishReason     string
	}

	// Usage es el conteo de tokens que reporta el endpoint.
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	}

	// CompletionResponse es la respuesta unificada, venga de un body JSON
	// simple o de un stream SSE reensamblado.
	CompletionResponse struct {
		Choices []CompletionChoice
		Usage   Usage
	}
)

// Add acumula el uso de otra respuesta.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)
