package condition

import (
	"html/template"

	"dodotable/internal/render"
)

// LikeFilter matches a column case-insensitively against the table's search
// word when the search type selects this filter's attribute.
type LikeFilter struct {
	Identifier string
	Column     string
	Attr       string
	Args       Args
}

func (f *LikeFilter) Query() (*Clause, error) {
	name := SearchNameFor(f.Identifier)
	if f.Args.Get(name.Type) != f.Attr {
		return nil, nil
	}
	word := f.Args.Get(name.Word)
	return &Clause{SQL: f.Column + " ILIKE ?", Args: []any{"%" + word + "%"}}, nil
}

// LikeAliasFilter is a LikeFilter for a column that is not addressed through
// the table identifier, e.g. a joined or aliased expression. It only fires
// when a search word is present.
type LikeAliasFilter struct {
	Identifier string
	Column     string
	Attr       string
	Args       Args
}

func (f *LikeAliasFilter) Query() (*Clause, error) {
	name := SearchNameFor(f.Identifier)
	word := f.Args.Get(name.Word)
	if word == "" || f.Args.Get(name.Type) != f.Attr {
		return nil, nil
	}
	return &Clause{SQL: f.Column + " ILIKE ?", Args: []any{"%" + word + "%"}}, nil
}

// EqualFilter matches a column for exact equality against the parsed search
// word. A word the parser rejects yields a FALSE clause, not an error.
type EqualFilter struct {
	Identifier string
	Column     string
	Attr       string
	Args       Args
	Parse      func(string) (any, error)
}

func (f *EqualFilter) Query() (*Clause, error) {
	name := SearchNameFor(f.Identifier)
	if f.Args.Get(name.Type) != f.Attr {
		return nil, nil
	}
	value, err := f.Parse(f.Args.Get(name.Word))
	if err != nil {
		return FalseClause(), nil
	}
	return &Clause{SQL: f.Column + " = ?", Args: []any{value}}, nil
}

// EqualAliasFilter is an EqualFilter for an aliased expression; like
// LikeAliasFilter it only fires when a search word is present.
type EqualAliasFilter struct {
	Identifier string
	Column     string
	Attr       string
	Args       Args
	Parse      func(string) (any, error)
}

func (f *EqualAliasFilter) Query() (*Clause, error) {
	name := SearchNameFor(f.Identifier)
	word := f.Args.Get(name.Word)
	if word == "" || f.Args.Get(name.Type) != f.Attr {
		return nil, nil
	}
	value, err := f.Parse(word)
	if err != nil {
		return FalseClause(), nil
	}
	return &Clause{SQL: f.Column + " = ?", Args: []any{value}}, nil
}

// SearchOption is one entry of the searchable-attribute selector.
type SearchOption struct {
	Value string
	Label string
}

// SearchSet is the table-level search box: it ORs together the search
// filters attached to the table's columns.
type SearchSet struct {
	Identifier string
	Args       Args
	Filters    []Queryable
	Options    []SearchOption
}

func NewSearchSet(identifier string, args Args, filters []Queryable, options []SearchOption) *SearchSet {
	return &SearchSet{
		Identifier: identifier,
		Args:       args,
		Filters:    filters,
		Options:    options,
	}
}

// WordName is the query-argument name carrying the search word.
func (s *SearchSet) WordName() string {
	return SearchNameFor(s.Identifier).Word
}

// TypeName is the query-argument name carrying the searched attribute.
func (s *SearchSet) TypeName() string {
	return SearchNameFor(s.Identifier).Type
}

// Word is the current search word.
func (s *SearchSet) Word() string {
	return s.Args.Get(s.WordName())
}

// SelectedType is the currently searched attribute.
func (s *SearchSet) SelectedType() string {
	return s.Args.Get(s.TypeName())
}

// IsSelected reports whether value is the active search type.
func (s *SearchSet) IsSelected(value string) bool {
	return s.SelectedType() == value
}

func (s *SearchSet) Query() (*Clause, error) {
	var clauses []*Clause
	for _, f := range s.Filters {
		cl, err := f.Query()
		if err != nil {
			return nil, err
		}
		if cl != nil {
			clauses = append(clauses, cl)
		}
	}
	return Or(clauses...), nil
}

func (s *SearchSet) HTML() (template.HTML, error) {
	return render.HTML("search.html", s)
}
