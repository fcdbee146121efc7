package prompt

import "sort"

// TypeEntry es un tipo convencional con su descripción, en orden estable.
type TypeEntry struct {
	Name        string
	Description string
}

// defaultCatalog es el catálogo de tipos que se usa cuando la configuración
// no define uno propio.
var defaultCatalog = []TypeEntry{
	{"feat", "a new user-facing feature or capability"},
	{"fix", "a bug fix for incorrect behavior"},
	{"docs", "documentation-only changes"},
	{"style", "formatting or stylistic changes with no behavior impact"},
	{"refactor", "code restructuring that changes neither behavior nor fixes a bug"},
	{"perf", "a change that measurably improves performance"},
	{"test", "adding or correcting tests"},
	{"build", "changes to the build system or external dependencies"},
	{"ci", "changes to CI configuration and scripts"},
	{"chore", "routine maintenance that touches no production code paths"},
	{"revert", "reverts a previous commit"},
}

var defaultOrder = func() map[string]int {
	order := make(map[string]int, len(defaultCatalog))
	for i, entry := range defaultCatalog {
		order[entry.Name] = i
	}
	return order
}()

// DefaultCatalog devuelve una copia del catálogo por defecto.
func DefaultCatalog() []TypeEntry {
	catalog := make([]TypeEntry, len(defaultCatalog))
	copy(catalog, defaultCatalog)
	return catalog
}

// ResolveCatalog convierte el mapa de configuración en una lista ordenada y
// determinística. Los tipos conocidos conservan el orden canónico; los
// desconocidos van al final en orden alfabético. Un mapa vacío cae al
// catálogo por defecto.
func ResolveCatalog(types map[string]string) []TypeEntry {
	if len(types) == 0 {
		return DefaultCatalog()
	}

	catalog := make([]TypeEntry, 0, len(types))
	for name, description := range types {
		catalog = append(catalog, TypeEntry{Name: name, Description: description})
	}

	sort.Slice(catalog, func(i, j int) bool {
		oi, iKnown := defaultOrder[catalog[i].Name]
		oj, jKnown := defaultOrder[catalog[j].Name]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return catalog[i].Name < catalog[j].Name
		}
	})

	return catalog
}
