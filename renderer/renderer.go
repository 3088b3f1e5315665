// Package renderer turns core stockio values into markdown documents. It
// owns every presentation decision (tables, labels, money formatting) so
// that the core stays free of display concerns.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate renders a main template that may depend on named partials.
// Template errors surface in the output rather than as errors: a broken
// report is a bug to fix, not a condition for callers to handle.
func renderTemplate(name, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(name).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", mainFile, err)
	}

	for alias, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial %q: %v", file, err)
		}
		if _, err := tmpl.New(alias).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial %q: %v", file, err)
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error rendering %q: %v", name, err)
	}
	return b.String()
}
