package schema

import (
	"html/template"

	"dodotable/internal/condition"
	"dodotable/internal/environment"
	"dodotable/internal/render"
	"dodotable/internal/util"
)

// ColumnSchema is the contract a table expects from its columns: shared
// metadata plus cell construction, which the column variants override.
type ColumnSchema interface {
	Renderable
	Spec() *Column
	Cell(col, row int, data any) Renderable
}

// Column is a plain table column. Attr is the dotted attribute path into a
// row datum; SQLName is the underlying SQL column, derived from Attr.
type Column struct {
	Label    string
	Attr     string
	SQLName  string
	Order    condition.Direction
	Filters  []condition.Queryable
	Repr     func(any) string
	Sortable bool
	Visible  bool
	Editable bool
	Classes  []string
	Env      environment.Environment
}

// NewColumn builds a sortable, visible column. orderBy is the raw order_by
// query argument; the column picks out its own direction, if any. The
// order_by grammar addresses columns by SQL name, e.g. "released_at.asc".
func NewColumn(label, attr, orderBy string) *Column {
	sqlName := util.CamelToUnderscore(attr)
	return &Column{
		Label:    label,
		Attr:     attr,
		SQLName:  sqlName,
		Order:    condition.OfColumn(sqlName, orderBy),
		Repr:     util.StringLiteral,
		Sortable: true,
		Visible:  true,
	}
}

func (c *Column) Spec() *Column {
	return c
}

func (c *Column) AddFilter(f condition.Queryable) {
	c.Filters = append(c.Filters, f)
}

func (c *Column) Cell(col, row int, data any) Renderable {
	return NewCell(col, row, util.Attr(data, c.Attr, nil), c.Repr, c.Classes)
}

// SortURL is the navigation URL toggling this column's sort direction.
// Empty when the column is unsortable or no environment is bound.
func (c *Column) SortURL() string {
	if c.Env == nil || !c.Sortable {
		return ""
	}
	next := condition.AscName(c.SQLName)
	if c.Order == condition.Ascendant {
		next = condition.DescName(c.SQLName)
	}
	return c.Env.BuildURL(map[string]string{"order_by": next})
}

func (c *Column) HTML() (template.HTML, error) {
	return render.HTML("column.html", c)
}

// LinkedColumn renders each cell as a link to an endpoint derived from the
// row datum.
type LinkedColumn struct {
	Column
	Endpoint func(data any) string
}

func NewLinkedColumn(label, attr, orderBy string, endpoint func(data any) string) *LinkedColumn {
	return &LinkedColumn{Column: *NewColumn(label, attr, orderBy), Endpoint: endpoint}
}

func (c *LinkedColumn) Cell(col, row int, data any) Renderable {
	cell := NewCell(col, row, util.Attr(data, c.Attr, nil), c.Repr, c.Classes)
	return &LinkedCell{Cell: *cell, URL: c.Endpoint(data)}
}

// ObjectColumn hands the whole row datum to the cell instead of one
// attribute; its Repr decides what to show.
type ObjectColumn struct {
	Column
}

func NewObjectColumn(label, attr, orderBy string) *ObjectColumn {
	return &ObjectColumn{Column: *NewColumn(label, attr, orderBy)}
}

func (c *ObjectColumn) Cell(col, row int, data any) Renderable {
	return NewCell(col, row, data, c.Repr, c.Classes)
}

// HiddenColumn never renders but keeps its search filters active, so an
// attribute can be searchable without being displayed.
type HiddenColumn struct {
	Column
}

func NewHiddenColumn(label, attr string) *HiddenColumn {
	col := NewColumn(label, attr, "")
	col.Visible = false
	return &HiddenColumn{Column: *col}
}

// MarkdownColumn renders its attribute as Markdown.
type MarkdownColumn struct {
	Column
}

func NewMarkdownColumn(label, attr string) *MarkdownColumn {
	col := NewColumn(label, attr, "")
	col.Sortable = false
	return &MarkdownColumn{Column: *col}
}

func (c *MarkdownColumn) Cell(col, row int, data any) Renderable {
	cell := NewCell(col, row, util.Attr(data, c.Attr, nil), c.Repr, c.Classes)
	return &MarkdownCell{Cell: *cell}
}
