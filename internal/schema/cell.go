package schema

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"dodotable/internal/render"
	"dodotable/internal/util"
)

// Cell is one table cell.
type Cell struct {
	Col     int
	Row     int
	Data    any
	Repr    func(any) string
	Classes []string
}

func NewCell(col, row int, data any, repr func(any) string, classes []string) *Cell {
	if repr == nil {
		repr = util.StringLiteral
	}
	return &Cell{Col: col, Row: row, Data: data, Repr: repr, Classes: classes}
}

// Value is the display form of the cell datum.
func (c *Cell) Value() string {
	return c.Repr(c.Data)
}

func (c *Cell) ClassAttr() string {
	return strings.Join(c.Classes, " ")
}

func (c *Cell) HTML() (template.HTML, error) {
	return render.HTML("cell.html", c)
}

// LinkedCell wraps its datum in an anchor to an endpoint URL.
type LinkedCell struct {
	Cell
	URL string
}

func (c *LinkedCell) HTML() (template.HTML, error) {
	return render.HTML("linkedcell.html", c)
}

// MarkdownCell renders its datum from Markdown. The produced markup is the
// only unescaped HTML in a rendered table.
type MarkdownCell struct {
	Cell
}

func (c *MarkdownCell) Markdown() (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(c.Value()), &buf); err != nil {
		return "", fmt.Errorf("render markdown cell: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (c *MarkdownCell) HTML() (template.HTML, error) {
	return render.HTML("markdowncell.html", c)
}
