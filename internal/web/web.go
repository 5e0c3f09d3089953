package web

import (
	"embed"
	"fmt"
	"html/template"
)

// HomeTemplate is the name the homepage is registered under.
const HomeTemplate = "home.html"

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if tmpl.Lookup(HomeTemplate) == nil {
		return nil, fmt.Errorf("parse templates: %s missing", HomeTemplate)
	}
	return tmpl, nil
}
