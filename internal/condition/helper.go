package condition

import (
	"html/template"

	"dodotable/internal/environment"
	"dodotable/internal/render"
)

// Limit is the page-size selector. It renders alongside the other filters
// but contributes no SQL: the chosen limit travels through the "limit"
// query argument instead.
type Limit struct {
	Identifier string
	Args       Args
	Options    []int
	Selected   int
}

func NewLimit(identifier string, args Args, selected int) *Limit {
	return &Limit{
		Identifier: identifier,
		Args:       args,
		Options:    []int{10, 25, 50, 100},
		Selected:   selected,
	}
}

func (l *Limit) Query() (*Clause, error) {
	return nil, nil
}

func (l *Limit) HTML() (template.HTML, error) {
	return render.HTML("limit.html", l)
}

// Category renders a SelectFilter as a link list instead of a select tag.
type Category struct {
	SelectFilter
	Env environment.Environment
}

func NewCategory(column, attr string, choices []Choice, args Args, def string) *Category {
	return &Category{SelectFilter: *NewSelectFilter(column, attr, choices, args, def)}
}

// ChoiceLink is one rendered category entry.
type ChoiceLink struct {
	Name        string
	Description string
	Selected    bool
	URL         string
}

// Links materializes the choices with their navigation URLs. Without an
// environment the links render as plain text.
func (c *Category) Links() []ChoiceLink {
	links := make([]ChoiceLink, 0, len(c.Choices))
	for _, choice := range c.Choices {
		link := ChoiceLink{
			Name:        choice.Name,
			Description: choice.Description,
			Selected:    c.IsSelected(choice.Name),
		}
		if c.Env != nil {
			link.URL = c.Env.BuildURL(map[string]string{c.ArgName(): choice.Name})
		}
		links = append(links, link)
	}
	return links
}

func (c *Category) HTML() (template.HTML, error) {
	return render.HTML("category.html", c)
}
