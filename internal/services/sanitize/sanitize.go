// Package sanitize convierte el texto crudo del modelo en un mensaje de
// commit bien formado: título de una línea y body opcional normalizado.
package sanitize

import (
	"strings"

	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/Tomas-vilte/SmartCommit/internal/regex"
)

const maxBulletItems = 6

// Sanitize procesa el texto crudo. Devuelve ok=false cuando no queda ningún
// título usable después de la limpieza.
func Sanitize(raw string, includeDetails bool, detailsStyle string) (models.CommitSuggestion, bool) {
	text := stripFences(raw)

	lines := strings.Split(text, "\n")

	if !includeDetails {
		title := firstNonEmpty(lines)
		title = sanitizeTitle(title)
		if title == "" {
			return models.CommitSuggestion{}, false
		}
		return models.CommitSuggestion{Title: title}, true
	}

	titleIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			titleIdx = i
			break
		}
	}
	if titleIdx == -1 {
		return models.CommitSuggestion{}, false
	}

	title := sanitizeTitle(lines[titleIdx])
	if title == "" {
		return models.CommitSuggestion{}, false
	}

	body := normalizeBody(lines[titleIdx+1:], detailsStyle)
	return models.CommitSuggestion{Title: title, Body: body}, true
}

// stripFences saca los fences de Markdown. Si hay un bloque cercado se
// conserva su contenido; si no, se eliminan los backticks sueltos.
func stripFences(raw string) string {
	if matches := regex.FencedBlock.FindStringSubmatch(raw); matches != nil {
		return strings.TrimSpace(matches[1])
	}
	return strings.TrimSpace(strings.ReplaceAll(raw, "`", ""))
}

func firstNonEmpty(lines []string) string {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

func sanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = regex.TitleLabel.ReplaceAllString(title, "")
	title = trimWrappingQuotes(title)
	title = regex.TrailingFullStop.ReplaceAllString(title, "$1")
	return strings.TrimSpace(title)
}

// trimWrappingQuotes saca un par de comillas que envuelva el título entero.
func trimWrappingQuotes(s string) string {
	pairs := [][2]string{
		{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"‘", "’"}, {"「", "」"},
	}
	for _, pair := range pairs {
		if len(s) >= 2 && strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, pair[0]), pair[1]))
		}
	}
	return s
}

func normalizeBody(lines []string, detailsStyle string) string {
	trimmed := trimBlankEdges(lines)
	if len(trimmed) == 0 {
		return ""
	}
	// Un "body:" inicial es un rótulo del modelo, no contenido.
	trimmed[0] = regex.BodyLabel.ReplaceAllString(trimmed[0], "")

	if detailsStyle == "list" {
		return normalizeList(trimmed)
	}
	return normalizeParagraph(trimmed)
}

func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// normalizeList extrae hasta 6 ítems de bullet, sacando marcadores anidados
// y descartando fragmentos que son pura puntuación.
func normalizeList(lines []string) string {
	var items []string
	for _, line := range lines {
		item := strings.TrimSpace(line)
		if item == "" {
			continue
		}
		for regex.BulletMarker.MatchString(item) {
			item = strings.TrimSpace(regex.BulletMarker.ReplaceAllString(item, ""))
		}
		item = regex.BodyLabel.ReplaceAllString(item, "")
		if regex.OnlyPunct.MatchString(item) {
			continue
		}
		items = append(items, "- "+item)
		if len(items) == maxBulletItems {
			break
		}
	}
	return strings.Join(items, "\n")
}

// normalizeParagraph junta las líneas en un único párrafo con espacios
// colapsados, sacando rótulos de sección en inglés y chino.
func normalizeParagraph(lines []string) string {
	var parts []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = regex.BodyLabel.ReplaceAllString(line, "")
		for regex.BulletMarker.MatchString(line) {
			line = strings.TrimSpace(regex.BulletMarker.ReplaceAllString(line, ""))
		}
		if regex.OnlyPunct.MatchString(line) {
			continue
		}
		parts = append(parts, line)
	}
	joined := strings.Join(parts, " ")
	joined = regex.SpaceCollapse.ReplaceAllString(joined, " ")
	return strings.TrimSpace(joined)
}
