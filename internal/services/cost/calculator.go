// Package cost estima el costo en dólares del uso de tokens reportado por
// el endpoint de completions. La tabla cubre los modelos más comunes; un
// modelo desconocido simplemente no tiene estimación.
package cost

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
)

type PricingTable struct {
	InputPricePerMillion  float64
	OutputPricePerMillion float64
}

// https://openai.com/api/pricing y https://api-docs.deepseek.com/quick_start/pricing
var pricing = map[string]PricingTable{
	"gpt-4o":            {InputPricePerMillion: 2.50, OutputPricePerMillion: 10.00},
	"gpt-4o-mini":       {InputPricePerMillion: 0.15, OutputPricePerMillion: 0.60},
	"gpt-4.1":           {InputPricePerMillion: 2.00, OutputPricePerMillion: 8.00},
	"gpt-4.1-mini":      {InputPricePerMillion: 0.40, OutputPricePerMillion: 1.60},
	"gpt-4.1-nano":      {InputPricePerMillion: 0.10, OutputPricePerMillion: 0.40},
	"o3-mini":           {InputPricePerMillion: 1.10, OutputPricePerMillion: 4.40},
	"deepseek-chat":     {InputPricePerMillion: 0.27, OutputPricePerMillion: 1.10},
	"deepseek-reasoner": {InputPricePerMillion: 0.55, OutputPricePerMillion: 2.19},
}

// Estimate devuelve el costo estimado en USD para el uso dado. ok es false
// cuando el modelo no está en la tabla de precios.
func Estimate(model string, usage models.Usage) (float64, bool) {
	table, ok := pricing[normalizeModel(model)]
	if !ok {
		return 0, false
	}
	input := float64(usage.PromptTokens) / 1_000_000 * table.InputPricePerMillion
	output := float64(usage.CompletionTokens) / 1_000_000 * table.OutputPricePerMillion
	return input + output, true
}

// FormatUSD redondea a una precisión razonable para montos chicos.
func FormatUSD(amount float64) string {
	if amount < 0.01 {
		return fmt.Sprintf("$%.6f", amount)
	}
	return fmt.Sprintf("$%.4f", amount)
}

// normalizeModel saca sufijos de snapshot tipo "gpt-4o-mini-2024-07-18".
func normalizeModel(model string) string {
	model = strings.ToLower(strings.TrimSpace(model))
	if _, ok := pricing[model]; ok {
		return model
	}
	// "gpt-4o-" también es prefijo de "gpt-4o-mini-...": gana el más largo.
	best := ""
	for known := range pricing {
		if strings.HasPrefix(model, known+"-") && len(known) > len(best) {
			best = known
		}
	}
	if best != "" {
		return best
	}
	return model
}
