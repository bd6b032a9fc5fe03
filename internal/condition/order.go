package condition

import "strings"

// Direction is a sort direction.
type Direction string

const (
	Ascendant  Direction = "asc"
	Descendant Direction = "desc"
)

// Order is a sort criterion for one column.
type Order struct {
	Column    string
	Direction Direction
}

// NewOrder builds an Order, defaulting to descending.
func NewOrder(column string, dir Direction) Order {
	if dir == "" {
		dir = Descendant
	}
	return Order{Column: column, Direction: dir}
}

// Expr renders the ORDER BY expression. Column names come from column
// definitions in code, never from request input.
func (o Order) Expr() string {
	if o.Direction == Ascendant {
		return o.Column + " ASC"
	}
	return o.Column + " DESC"
}

// AscName is the query-string token selecting ascending order for attr.
func AscName(attr string) string {
	return attr + "." + string(Ascendant)
}

// DescName is the query-string token selecting descending order for attr.
func DescName(attr string) string {
	return attr + "." + string(Descendant)
}

// OfColumn extracts the direction for attr from a comma-separated order_by
// argument such as "name.asc,plays.desc". Returns "" when attr is absent.
func OfColumn(attr, orderBy string) Direction {
	if orderBy == "" {
		return ""
	}
	var dir Direction
	for _, token := range strings.Split(orderBy, ",") {
		switch strings.TrimSpace(token) {
		case AscName(attr):
			dir = Ascendant
		case DescName(attr):
			dir = Descendant
		}
	}
	return dir
}
