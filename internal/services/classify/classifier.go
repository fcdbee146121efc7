// Package classify implementa el pase de clasificación de tipo convencional:
// un request separado que puntúa los 3 mejores candidatos bajo una rúbrica
// ponderada con gates duros, y fija el tipo antes de la generación final.
package classify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/ports"
	"github.com/Tomas-vilte/SmartCommit/internal/services/prompt"
)

const (
	// Pesos de la rúbrica de scoring.
	weightEvidence    = 0.55
	weightConsistency = 0.30
	weightExclusivity = 0.15

	// Empates de score dentro de este epsilon se deciden por typeWeight.
	scoreEpsilon = 1e-6

	maxCandidates = 3
)

type Classifier struct {
	completer  ports.Completer
	inferencer ports.CategoryInferencer
	model      string
}

func NewClassifier(completer ports.Completer, inferencer ports.CategoryInferencer, model string) *Classifier {
	if inferencer == nil {
		inferencer = NewKeywordInferencer()
	}
	return &Classifier{
		completer:  completer,
		inferencer: inferencer,
		model:      model,
	}
}

// Classify puntúa los tipos candidatos para el diff dado y devuelve el
// reporte con el tipo seleccionado. Un resultado no parseable o vacío
// devuelve error; la falla de clasificación nunca es fatal para el caller,
// que cae a la generación sin tipo fijado.
func (c *Classifier) Classify(ctx context.Context, diff string, catalog []prompt.TypeEntry) (*models.JudgeReport, error) {
	if len(catalog) == 0 {
		catalog = prompt.DefaultCatalog()
	}

	temperature := 0.0
	req := models.CompletionRequest{
		Model: c.model,
		Messages: []models.ChatMessage{
			{Role: models.RoleSystem, Content: judgePrompt(catalog)},
			{Role: models.RoleUser, Content: diff},
		},
		Temperature: &temperature,
	}

	resp, err := c.completer.Complete(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("el juez no devolvió alternativas")
	}

	raw := decodeJudgeResponse(resp.Choices[0].Content)
	if len(raw) == 0 {
		return nil, fmt.Errorf("respuesta del juez no parseable")
	}

	descriptions := make(map[string]string, len(catalog))
	for _, entry := range catalog {
		descriptions[entry.Name] = entry.Description
	}

	candidates := make([]models.TypeCandidate, 0, len(raw))
	for _, rc := range raw {
		candidates = append(candidates, c.score(rc, descriptions[rc.Type]))
	}

	rank(candidates)
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return &models.JudgeReport{
		SelectedType: selectType(candidates),
		Candidates:   candidates,
	}, nil
}

// score aplica la rúbrica ponderada y el override del gate: solo fix y perf
// respetan el gate reportado por el modelo, el resto pasa siempre.
func (c *Classifier) score(rc rawCandidate, description string) models.TypeCandidate {
	category := c.inferencer.InferCategory(rc.Type, description)
	typeWeight := CategoryWeight(category)

	gate := true
	if category == models.CategoryFix || category == models.CategoryPerf {
		gate = rc.HardGatePass
	}

	weighted := (rc.EvidenceMatch*weightEvidence +
		rc.TitleBodyConsistency*weightConsistency +
		rc.Exclusivity*weightExclusivity) * typeWeight

	return models.TypeCandidate{
		Type:                 rc.Type,
		Category:             category,
		EvidenceMatch:        rc.EvidenceMatch,
		TitleBodyConsistency: rc.TitleBodyConsistency,
		Exclusivity:          rc.Exclusivity,
		ModelHardGatePass:    rc.HardGatePass,
		HardGatePass:         gate,
		TypeWeight:           typeWeight,
		WeightedScore:        weighted,
	}
}

// rank ordena: gate aprobado primero, después score ponderado descendente;
// empates dentro de epsilon se rompen por typeWeight más alto.
func rank(candidates []models.TypeCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.HardGatePass != b.HardGatePass {
			return a.HardGatePass
		}
		diff := a.WeightedScore - b.WeightedScore
		if diff > scoreEpsilon {
			return true
		}
		if diff < -scoreEpsilon {
			return false
		}
		return a.TypeWeight > b.TypeWeight
	})
}

// selectType elige el primer candidato con gate aprobado; si no hay, el
// primero que no sea fix/perf; como último recurso, el mejor rankeado.
func selectType(candidates []models.TypeCandidate) string {
	if len(candidates) == 0 {
		return ""
	}
	for _, candidate := range candidates {
		if candidate.HardGatePass {
			return candidate.Type
		}
	}
	for _, candidate := range candidates {
		if candidate.Category != models.CategoryFix && candidate.Category != models.CategoryPerf {
			return candidate.Type
		}
	}
	return candidates[0].Type
}

func judgePrompt(catalog []prompt.TypeEntry) string {
	var b strings.Builder
	b.WriteString("You are a strict commit-type judge. Given a staged git diff, score the 3 best-matching conventional commit types.\n")
	b.WriteString("Available types:\n")
	for _, entry := range catalog {
		fmt.Fprintf(&b, "- %s: %s\n", entry.Name, entry.Description)
	}
	b.WriteString(`Respond with ONLY a JSON object, no prose:
{"candidates":[{"type":"<name>","evidence_match":0-10,"title_body_consistency":0-10,"exclusivity":0-10,"hard_gate_pass":true|false}]}
Exactly 3 candidates, best first.
- evidence_match: how directly the diff evidences this type.
- title_body_consistency: how coherent a message of this type would be with the whole change.
- exclusivity: how poorly the alternatives fit compared to this type.
- hard_gate_pass: for fix, true ONLY if the diff shows a concrete defect being corrected; for perf, true ONLY if the diff shows a measurable performance change; otherwise true.`)
	return b.String()
}
