package openai

import (
	"bufio"
	"encoding/json"
	"io"
	"sort"
	"strings"

	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
)

// Tamaño máximo de un frame SSE. Algunos modelos mandan deltas grandes
// cuando el proveedor bufferiza.
const maxFrameSize = 1024 * 1024

const doneSentinel = "[DONE]"

type chatCompletionChunk struct {
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Role             string `json:"role"`
			Content          string `json:"content"`
			ReasoningContent string `json:"reasoning_content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
	Usage *models.Usage `json:"usage"`
}

// choiceAccumulator junta los deltas de una misma alternativa (index) en
// orden de llegada.
type choiceAccumulator struct {
	role         string
	content      strings.Builder
	reasoning    strings.Builder
	finishReason string
}

// readStream consume un body SSE (frames "data: {json}" separados por línea
// en blanco, terminados por "data: [DONE]" o fin de stream) y devuelve la
// respuesta reensamblada. Cada delta se emite por onEvent antes del
// reensamblado final; los frames malformados se saltean sin abortar.
func readStream(body io.Reader, onEvent ports.StreamCallback) (*models.CompletionResponse, error) {
	accumulators := make(map[int]*choiceAccumulator)
	var order []int
	var usage models.Usage

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == doneSentinel {
			break
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}

		// Algunos proveedores mandan el usage en un frame final propio.
		if chunk.Usage != nil {
			usage = *chunk.Usage
		}

		for _, choice := range chunk.Choices {
			acc, exists := accumulators[choice.Index]
			if !exists {
				acc = &choiceAccumulator{}
				accumulators[choice.Index] = acc
				order = append(order, choice.Index)
			}

			if choice.Delta.Role != "" {
				acc.role = choice.Delta.Role
			}
			if choice.Delta.ReasoningContent != "" {
				acc.reasoning.WriteString(choice.Delta.ReasoningContent)
				if onEvent != nil {
					onEvent(models.StreamEvent{
						Kind: models.StreamReasoning,
						Text: choice.Delta.ReasoningContent,
					})
				}
			}
			if choice.Delta.Content != "" {
				acc.content.WriteString(choice.Delta.Content)
				if onEvent != nil {
					onEvent(models.StreamEvent{
						Kind: models.StreamContent,
						Text: choice.Delta.Content,
					})
				}
			}
			if choice.FinishReason != nil && *choice.FinishReason != "" {
				acc.finishReason = *choice.FinishReason
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(accumulators) == 0 {
		return nil, domainerrors.NewAPIError(0, "no choices", "")
	}

	sort.Ints(order)
	choices := make([]models.CompletionChoice, 0, len(order))
	for _, index := range order {
		acc := accumulators[index]
		choices = append(choices, models.CompletionChoice{
			Index:            index,
			Role:             acc.role,
			Content:          acc.content.String(),
			ReasoningContent: acc.reasoning.String(),
			FinishReason:     acc.finishReason,
		})
	}

	return &models.CompletionResponse{Choices: choices, Usage: usage}, nil
}
