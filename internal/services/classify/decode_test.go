package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJudgeResponse_CanonicalShape(t *testing.T) {
	raw := `{"candidates":[
		{"type":"refactor","evidence_match":9,"title_body_consistency":8,"exclusivity":7,"hard_gate_pass":true},
		{"type":"fix","evidence_match":4,"title_body_consistency":5,"exclusivity":3,"hard_gate_pass":false}
	]}`

	candidates := decodeJudgeResponse(raw)

	require.Len(t, candidates, 2)
	assert.Equal(t, "refactor", candidates[0].Type)
	assert.Equal(t, 9.0, candidates[0].EvidenceMatch)
	assert.Equal(t, 8.0, candidates[0].TitleBodyConsistency)
	assert.Equal(t, 7.0, candidates[0].Exclusivity)
	assert.True(t, candidates[0].HardGatePass)
	assert.False(t, candidates[1].HardGatePass)
}

func TestDecodeJudgeResponse_AlternateSpellings(t *testing.T) {
	raw := `{"top3":[
		{"typeName":"feat","evidenceMatch":8,"consistency":"7.5","exclusive":6,"gate":"yes"},
		{"commit_type":"perf","evidence":3,"titleBodyConsistency":2,"exclusivity_score":1,"hard_gate":0}
	]}`

	candidates := decodeJudgeResponse(raw)

	require.Len(t, candidates, 2)
	assert.Equal(t, "feat", candidates[0].Type)
	assert.Equal(t, 8.0, candidates[0].EvidenceMatch)
	assert.Equal(t, 7.5, candidates[0].TitleBodyConsistency)
	assert.Equal(t, 6.0, candidates[0].Exclusivity)
	assert.True(t, candidates[0].HardGatePass)

	assert.Equal(t, "perf", candidates[1].Type)
	assert.False(t, candidates[1].HardGatePass)
}

func TestDecodeJudgeResponse_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is my analysis:\n```json\n" +
		`{"candidates":[{"type":"fix","evidence_match":9,"title_body_consistency":9,"exclusivity":9,"hard_gate_pass":true}]}` +
		"\n```\nLet me know if you need anything else."

	candidates := decodeJudgeResponse(raw)

	require.Len(t, candidates, 1)
	assert.Equal(t, "fix", candidates[0].Type)
}

func TestDecodeJudgeResponse_BracesInsideStrings(t *testing.T) {
	raw := `prefix {"candidates":[{"type":"feat {ui}","evidence_match":5,"title_body_consistency":5,"exclusivity":5,"hard_gate_pass":true}]} suffix`

	candidates := decodeJudgeResponse(raw)

	require.Len(t, candidates, 1)
	assert.Equal(t, "feat {ui}", candidates[0].Type)
}

func TestDecodeJudgeResponse_ClampsScores(t *testing.T) {
	raw := `{"candidates":[{"type":"feat","evidence_match":15,"title_body_consistency":-3,"exclusivity":"99","hard_gate_pass":true}]}`

	candidates := decodeJudgeResponse(raw)

	require.Len(t, candidates, 1)
	assert.Equal(t, 10.0, candidates[0].EvidenceMatch)
	assert.Equal(t, 0.0, candidates[0].TitleBodyConsistency)
	assert.Equal(t, 10.0, candidates[0].Exclusivity)
}

func TestDecodeJudgeResponse_BooleanCoercion(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"string true", `"true"`, true},
		{"string pass", `"pass"`, true},
		{"string y", `"y"`, true},
		{"string fail", `"fail"`, false},
		{"number one", `1`, true},
		{"number zero", `0`, false},
		{"missing key defaults false", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"candidates":[{"type":"fix","evidence_match":5,"title_body_consistency":5,"exclusivity":5,"hard_gate_pass":` + tt.value + `}]}`

			candidates := decodeJudgeResponse(raw)

			require.Len(t, candidates, 1)
			assert.Equal(t, tt.expected, candidates[0].HardGatePass)
		})
	}
}

func TestDecodeJudgeResponse_Unrecoverable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"prose without json", "I could not classify this diff, sorry."},
		{"unbalanced object", `{"candidates":[{"type":"fix"`},
		{"empty candidate list", `{"candidates":[]}`},
		{"entries without type", `{"candidates":[{"evidence_match":5}]}`},
		{"wrong list key", `{"stuff":[{"type":"fix"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, decodeJudgeResponse(tt.raw))
		})
	}
}

func TestDecodeJudgeResponse_MissingScoresDefaultZero(t *testing.T) {
	raw := `{"candidates":[{"type":"chore"}]}`

	candidates := decodeJudgeResponse(raw)

	require.Len(t, candidates, 1)
	assert.Equal(t, "chore", candidates[0].Type)
	assert.Zero(t, candidates[0].EvidenceMatch)
	assert.False(t, candidates[0].HardGatePass)
}
