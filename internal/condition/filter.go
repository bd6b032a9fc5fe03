package condition

import (
	"fmt"
	"html/template"

	"dodotable/internal/render"
)

// Choice is one selectable option of a SelectFilter.
type Choice struct {
	Name        string
	Description string
}

// ChoiceAll is the implicit first choice of every SelectFilter; selecting it
// disables the filter.
const ChoiceAll = "all"

// SelectFilter constrains a column to one of a declared set of choices,
// driven by the "select.<attr>" query argument.
type SelectFilter struct {
	Column  string
	Attr    string
	Choices []Choice
	Args    Args
	Default string
}

func NewSelectFilter(column, attr string, choices []Choice, args Args, def string) *SelectFilter {
	all := []Choice{{Name: ChoiceAll, Description: "All"}}
	return &SelectFilter{
		Column:  column,
		Attr:    attr,
		Choices: append(all, choices...),
		Args:    args,
		Default: def,
	}
}

// ArgName is the query-argument name this filter reads.
func (f *SelectFilter) ArgName() string {
	return "select." + f.Attr
}

// Selected is the active choice name, falling back to the default.
func (f *SelectFilter) Selected() string {
	if s := f.Args.Get(f.ArgName()); s != "" {
		return s
	}
	return f.Default
}

// IsSelected reports whether name is the active choice.
func (f *SelectFilter) IsSelected(name string) bool {
	return f.Selected() == name
}

func (f *SelectFilter) choiceNames() []string {
	names := make([]string, 0, len(f.Choices))
	for _, c := range f.Choices {
		names = append(names, c.Name)
	}
	return names
}

func (f *SelectFilter) Query() (*Clause, error) {
	s := f.Selected()
	names := f.choiceNames()
	switch {
	case s == "":
		// No selection constrains to the declared choice set.
		placeholders := ""
		args := make([]any, 0, len(names))
		for i, name := range names {
			if i > 0 {
				placeholders += ", "
			}
			placeholders += "?"
			args = append(args, name)
		}
		return &Clause{SQL: f.Column + " IN (" + placeholders + ")", Args: args}, nil
	case !contains(names, s):
		return nil, fmt.Errorf("%w: invalid choice for %q: %q", ErrBadChoice, f.ArgName(), s)
	case s == ChoiceAll:
		return nil, nil
	default:
		return &Clause{SQL: f.Column + " = ?", Args: []any{s}}, nil
	}
}

func (f *SelectFilter) HTML() (template.HTML, error) {
	return render.HTML("select_filter.html", f)
}

// Null-selection sentinels of NullSelectableSelectFilter.
const (
	ChoiceNull    = "null"
	ChoiceNotNull = "not-null"
)

// NullSelectableSelectFilter is a SelectFilter with two extra sentinel
// choices mapping to IS NULL / IS NOT NULL.
type NullSelectableSelectFilter struct {
	SelectFilter
}

func NewNullSelectableSelectFilter(column, attr string, choices []Choice, args Args, def string) *NullSelectableSelectFilter {
	base := NewSelectFilter(column, attr, choices, args, def)
	base.Choices = append(base.Choices,
		Choice{Name: ChoiceNull, Description: "Empty"},
		Choice{Name: ChoiceNotNull, Description: "Not empty"},
	)
	return &NullSelectableSelectFilter{SelectFilter: *base}
}

func (f *NullSelectableSelectFilter) Query() (*Clause, error) {
	switch f.Selected() {
	case ChoiceNull:
		return &Clause{SQL: f.Column + " IS NULL"}, nil
	case ChoiceNotNull:
		return &Clause{SQL: f.Column + " IS NOT NULL"}, nil
	}
	return f.SelectFilter.Query()
}

func contains(names []string, s string) bool {
	for _, name := range names {
		if name == s {
			return true
		}
	}
	return false
}
