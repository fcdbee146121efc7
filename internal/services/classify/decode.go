package classify

import (
	"encoding/json"
	"strconv"
	"strings"
)

// rawCandidate es un candidato ya coaccionado a tipos fuertes. Pasada esta
// frontera no circula ningún mapa sin tipar.
type rawCandidate struct {
	Type                 string
	EvidenceMatch        float64
	TitleBodyConsistency float64
	Exclusivity          float64
	HardGatePass         bool
}

// Ortografías alternativas que se aceptan para cada campo del JSON del juez.
var (
	candidateListKeys = []string{"candidates", "top3", "types", "results"}
	typeKeys          = []string{"type", "type_name", "typeName", "name", "commit_type"}
	evidenceKeys      = []string{"evidence_match", "evidenceMatch", "evidence", "evidence_score"}
	consistencyKeys   = []string{"title_body_consistency", "titleBodyConsistency", "consistency"}
	exclusivityKeys   = []string{"exclusivity", "exclusive", "exclusivity_score"}
	gateKeys          = []string{"hard_gate_pass", "hardGatePass", "hard_gate", "gate_pass", "gate"}
)

// decodeJudgeResponse parsea la respuesta cruda del pase de clasificación de
// forma tolerante: extrae el primer objeto {...} balanceado, acepta nombres
// de campo alternativos, acota los numéricos a [0,10] y coacciona booleanos
// en string o número. Devuelve nil cuando no hay nada recuperable.
func decodeJudgeResponse(raw string) []rawCandidate {
	object := extractBalancedObject(raw)
	if object == "" {
		return nil
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(object), &parsed); err != nil {
		return nil
	}

	var list []map[string]any
	for _, key := range candidateListKeys {
		if rawList, ok := parsed[key]; ok {
			if err := json.Unmarshal(rawList, &list); err == nil && len(list) > 0 {
				break
			}
			list = nil
		}
	}
	if len(list) == 0 {
		return nil
	}

	candidates := make([]rawCandidate, 0, len(list))
	for _, entry := range list {
		typeName, ok := lookupString(entry, typeKeys)
		if !ok || typeName == "" {
			continue
		}
		candidates = append(candidates, rawCandidate{
			Type:                 typeName,
			EvidenceMatch:        clampScore(lookupNumber(entry, evidenceKeys)),
			TitleBodyConsistency: clampScore(lookupNumber(entry, consistencyKeys)),
			Exclusivity:          clampScore(lookupNumber(entry, exclusivityKeys)),
			HardGatePass:         lookupBool(entry, gateKeys),
		})
	}
	return candidates
}

// extractBalancedObject devuelve el primer substring {...} balanceado,
// ignorando llaves dentro de strings JSON.
func extractBalancedObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}

func lookupString(entry map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		if value, ok := entry[key]; ok {
			if s, ok := value.(string); ok {
				return strings.TrimSpace(s), true
			}
		}
	}
	return "", false
}

func lookupNumber(entry map[string]any, keys []string) float64 {
	for _, key := range keys {
		value, ok := entry[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return parsed
			}
		case bool:
			if v {
				return 10
			}
			return 0
		}
	}
	return 0
}

func lookupBool(entry map[string]any, keys []string) bool {
	for _, key := range keys {
		value, ok := entry[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case bool:
			return v
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "yes", "y", "1", "pass", "passed":
				return true
			case "false", "no", "n", "0", "fail", "failed":
				return false
			}
		case float64:
			return v != 0
		}
	}
	return false
}

func clampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 10 {
		return 10
	}
	return value
}
