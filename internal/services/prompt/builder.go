package prompt

import (
	"fmt"
	"strings"
)

// maxListedFiles limita el listado de archivos en el prompt; el resto se
// resume como "and N more".
const maxListedFiles = 12

// Options es una vista derivada de la configuración más el contexto de la
// invocación. Build es una función pura de estas opciones.
type Options struct {
	Locale         string
	MaxLength      int
	Conventional   bool
	IncludeDetails bool
	DetailsStyle   string // "paragraph" | "list"
	Files          []string
	// TypeCatalog ya resuelto y ordenado. Vacío cae al catálogo por defecto.
	TypeCatalog []TypeEntry
	// Template del título convencional, p. ej. "<type>(<scope>): <subject>".
	Template string
	// LockedType fija el tipo elegido por el pase de clasificación; el
	// modelo no debe re-derivarlo.
	LockedType string
	// ScopePreferred pide scope cuando el template lo soporta.
	ScopePreferred bool
	// RequireScope convierte la preferencia en requisito duro (pase de retry).
	RequireScope       bool
	CustomInstructions string
}

// Build arma el prompt de sistema de forma determinística. Las secciones
// vacías se omiten por completo, sin dejar líneas en blanco.
func Build(opts Options) string {
	sections := []string{
		framingSection(),
		detailsSection(opts),
		fmt.Sprintf("Message language: %s. Write the entire commit message in that language.", opts.Locale),
		fmt.Sprintf("The title must be a maximum of %d characters.", opts.MaxLength),
		"Respond with ONLY the message text. No preamble, no explanation, no markdown fences.",
		filesSection(opts.Files),
		anchorSection(opts),
		typeSection(opts),
		formatSection(opts),
		styleSection(),
		strings.TrimSpace(opts.CustomInstructions),
	}

	var nonEmpty []string
	for _, section := range sections {
		if section != "" {
			nonEmpty = append(nonEmpty, section)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func framingSection() string {
	return "You are an assistant that writes git commit messages. " +
		"Analyze the staged diff provided by the user and produce a commit message describing the change."
}

func detailsSection(opts Options) string {
	if !opts.IncludeDetails {
		return "Write a single-line commit title. Do not include a body."
	}
	structure := "Structure the message exactly as:\n<title>\n\n<body>"
	if opts.DetailsStyle == "list" {
		return structure + "\nThe body is a short bullet list (at most 6 items, each starting with \"- \") of the concrete changes."
	}
	return structure + "\nThe body is one short paragraph explaining what changed and why."
}

func filesSection(files []string) string {
	if len(files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Changed files:")
	shown := files
	if len(shown) > maxListedFiles {
		shown = shown[:maxListedFiles]
	}
	for _, file := range shown {
		b.WriteString("\n- ")
		b.WriteString(file)
	}
	if extra := len(files) - len(shown); extra > 0 {
		b.WriteString(fmt.Sprintf("\n- and %d more", extra))
	}
	return b.String()
}

func anchorSection(opts Options) string {
	anchor := "The title must reference at least one concrete file, class or module name from the changes."
	if opts.Conventional && opts.ScopePreferred && supportsScope(opts.Template) {
		anchor += " Prefer including a conventional scope naming the touched module."
	}
	if opts.Conventional && opts.RequireScope && supportsScope(opts.Template) {
		anchor += " HARD REQUIREMENT: the title MUST include a scope in parentheses after the type."
	}
	return anchor
}

func typeSection(opts Options) string {
	if !opts.Conventional {
		return ""
	}
	if opts.LockedType != "" {
		return fmt.Sprintf("Commit type: use %q as the conventional commit type. "+
			"This type was already selected, do not choose a different one.", opts.LockedType)
	}

	catalog := opts.TypeCatalog
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	var b strings.Builder
	b.WriteString("Choose the single conventional commit type that best matches the change:")
	for _, entry := range catalog {
		b.WriteString(fmt.Sprintf("\n- %s: %s", entry.Name, entry.Description))
	}
	b.WriteString("\nPick exactly one type. When several apply, pick the one describing the dominant intent of the diff.")
	return b.String()
}

func formatSection(opts Options) string {
	if !opts.Conventional {
		return "Output format:\n<commit message>"
	}
	template := opts.Template
	if template == "" {
		template = "<type>(<scope>): <subject>"
	}
	return "Output format for the title:\n" + template
}

func styleSection() string {
	return "Style rules:\n" +
		"- Use the imperative mood (\"add\", not \"added\").\n" +
		"- Reference concrete symbols, not vague descriptions.\n" +
		"- Avoid generic phrasing like \"update code\" or \"improve things\".\n" +
		"- Do not end the title with a period."
}

// supportsScope indica si el template del título tiene lugar para un scope.
func supportsScope(template string) bool {
	if template == "" {
		template = "<type>(<scope>): <subject>"
	}
	return strings.Contains(template, "<scope>")
}
