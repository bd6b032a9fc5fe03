// Package render executes the embedded HTML templates of the table engine.
// Templates auto-escape; a renderable element reaches its sub-elements by
// calling their HTML methods from inside its template.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HTML renders the named template with data into escaped HTML.
func HTML(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
