package models

// StreamEventKind distingue los dos canales que puede emitir el modelo
// durante una respuesta streaming.
type StreamEventKind string

const (
	StreamReasoning StreamEventKind = "reasoning"
	StreamContent   StreamEventKind = "content"
)

// GenerationPhase indica en qué paso del pipeline se emitió un evento.
type GenerationPhase string

const (
	PhaseMessageGeneration GenerationPhase = "message-generation"
	PhaseTitleRewrite      GenerationPhase = "title-rewrite"
)

// StreamEvent es un delta de texto entregado en vivo mientras llega la
// respuesta. El orden de entrega respeta el orden de llegada del transporte.
type StreamEvent struct {
	Kind  StreamEventKind
	Phase GenerationPhase
	Text  string
}
