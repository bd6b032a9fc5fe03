package schema

import (
	"context"
	"fmt"
	"html/template"

	"dodotable/internal/condition"
	"dodotable/internal/environment"
	"dodotable/internal/render"
)

// RowSource executes the table's query: a total count and one page of row
// data under the same WHERE clauses.
type RowSource interface {
	Count(ctx context.Context, where []*condition.Clause) (int, error)
	Select(ctx context.Context, where []*condition.Clause, order []string, limit, offset int) ([]any, error)
}

// Table assembles columns, filters and a row source into one renderable
// page of data.
type Table struct {
	Identifier string
	Label      string
	UnitLabel  string
	Columns    []ColumnSchema
	Filters    []condition.Queryable
	Rows       []*Row
	Pager      *Pager
	Count      int
	Env        environment.Environment

	source RowSource
}

func NewTable(identifier, label, unitLabel string, columns []ColumnSchema, source RowSource) *Table {
	if unitLabel == "" {
		unitLabel = "rows"
	}
	return &Table{
		Identifier: identifier,
		Label:      label,
		UnitLabel:  unitLabel,
		Columns:    columns,
		Pager:      NewPager(DefaultLimit, DefaultOffset, 0),
		source:     source,
	}
}

func (t *Table) AddFilter(f condition.Queryable) {
	t.Filters = append(t.Filters, f)
}

func (t *Table) VisibleColumns() []ColumnSchema {
	var visible []ColumnSchema
	for _, col := range t.Columns {
		if col.Spec().Visible {
			visible = append(visible, col)
		}
	}
	return visible
}

// SearchFilters collects the search filters attached to every column,
// hidden ones included.
func (t *Table) SearchFilters() []condition.Queryable {
	var filters []condition.Queryable
	for _, col := range t.Columns {
		filters = append(filters, col.Spec().Filters...)
	}
	return filters
}

// RenderableFilters is the subset of table filters that draw themselves,
// in the order they were added.
func (t *Table) RenderableFilters() []Renderable {
	var renderables []Renderable
	for _, f := range t.Filters {
		if r, ok := f.(Renderable); ok {
			renderables = append(renderables, r)
		}
	}
	return renderables
}

func (t *Table) whereClauses() ([]*condition.Clause, error) {
	var clauses []*condition.Clause
	for _, f := range t.Filters {
		cl, err := f.Query()
		if err != nil {
			return nil, err
		}
		if cl != nil {
			clauses = append(clauses, cl)
		}
	}
	return clauses, nil
}

// orderExprs builds the ORDER BY list from the columns. When no column
// carries a direction, the first visible column orders descending and keeps
// that direction for its sort link.
func (t *Table) orderExprs() []string {
	visible := t.VisibleColumns()
	var orders []string
	for _, col := range visible {
		spec := col.Spec()
		if spec.Order != "" {
			orders = append(orders, condition.NewOrder(spec.SQLName, spec.Order).Expr())
		}
	}
	if len(orders) == 0 && len(visible) > 0 {
		spec := visible[0].Spec()
		spec.Order = condition.Descendant
		orders = append(orders, condition.NewOrder(spec.SQLName, spec.Order).Expr())
	}
	return orders
}

// Select fetches one page: total count, row data, materialized cells and a
// rebuilt pager. An offset past the end yields no rows but a correct count.
func (t *Table) Select(ctx context.Context, offset, limit int) error {
	where, err := t.whereClauses()
	if err != nil {
		return err
	}

	count, err := t.source.Count(ctx, where)
	if err != nil {
		return fmt.Errorf("count %s: %w", t.Identifier, err)
	}

	data, err := t.source.Select(ctx, where, t.orderExprs(), limit, offset)
	if err != nil {
		return fmt.Errorf("select %s: %w", t.Identifier, err)
	}

	t.Rows = nil
	for i, datum := range data {
		row := &Row{}
		for j, col := range t.VisibleColumns() {
			row.Append(col.Cell(j, i, datum))
		}
		t.Rows = append(t.Rows, row)
	}

	t.Count = count
	t.Pager = NewPager(limit, offset, count)
	t.Pager.Env = t.Env
	return nil
}

// Bind attaches the web environment so sort links and pager links can be
// built during rendering.
func (t *Table) Bind(env environment.Environment) {
	t.Env = env
	for _, col := range t.Columns {
		col.Spec().Env = env
	}
	if t.Pager != nil {
		t.Pager.Env = env
	}
}

func (t *Table) HTML() (template.HTML, error) {
	return render.HTML("table.html", t)
}
