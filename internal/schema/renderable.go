// Package schema is the table engine: columns, cells, rows, the pager and
// the table itself, which turns one page of a filtered, ordered query into
// renderable HTML.
package schema

import "html/template"

// Renderable is any element that renders itself to escaped HTML.
type Renderable interface {
	HTML() (template.HTML, error)
}
