package models

type (
	// CommitInfo agrupa los cambios staged que alimentan la generación.
	CommitInfo struct {
		Files []string
		Diff  string
	}

	// CommitSuggestion es un mensaje de commit ya saneado.
	// Body puede estar vacío; en ese caso el mensaje es solo el título.
	CommitSuggestion struct {
		Title string
		Body  string
	}
)

// Message devuelve el mensaje de commit completo.
func (s CommitSuggestion) Message() string {
	if s.Body == "" {
		return s.Title
	}
	return s.Title + "\n\n" + s.Body
}
