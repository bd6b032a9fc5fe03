package schema

import (
	"html/template"

	"dodotable/internal/render"
)

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Renderable
}

func (r *Row) Append(cell Renderable) {
	r.Cells = append(r.Cells, cell)
}

func (r *Row) Len() int {
	return len(r.Cells)
}

func (r *Row) HTML() (template.HTML, error) {
	return render.HTML("row.html", r)
}
