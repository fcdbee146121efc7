package models

// TypeCategory es la categoría de peso de un tipo convencional. Se infiere
// del nombre y la descripción del tipo, no del texto del diff.
type TypeCategory string

const (
	CategoryFeat     TypeCategory = "feat"
	CategoryFix      TypeCategory = "fix"
	CategoryRefactor TypeCategory = "refactor"
	CategoryPerf     TypeCategory = "perf"
	CategoryOther    TypeCategory = "other"
)

type (
	// TypeCandidate es un tipo convencional puntuado por el pase de
	// clasificación. Los campos numéricos vienen acotados a [0, 10].
	TypeCandidate struct {
		Type                 string
		Category             TypeCategory
		EvidenceMatch        float64
		TitleBodyConsistency float64
		Exclusivity          float64
		// ModelHardGatePass es lo que reportó el modelo. HardGatePass es el
		// valor efectivo: solo fix y perf respetan el reporte del modelo,
		// el resto de las categorías pasa siempre.
		ModelHardGatePass bool
		HardGatePass      bool
		TypeWeight        float64
		WeightedScore     float64
	}

	// JudgeReport es el resultado del pase de clasificación: el tipo
	// seleccionado y los hasta 3 candidatos rankeados, para observabilidad.
	JudgeReport struct {
		SelectedType string
		Candidates   []TypeCandidate
	}
)
