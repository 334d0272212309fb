package widget

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageTemplate is the name the HTML page is registered under
const PageTemplate = "widget.html.tmpl"

// Templates parses the embedded HTML templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// RenderHTML writes the full widget page for a snapshot
func RenderHTML(w io.Writer, snap Snapshot) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, PageTemplate, snap.View())
}
