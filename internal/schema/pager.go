package schema

import (
	"html/template"
	"math"
	"strconv"

	"dodotable/internal/environment"
	"dodotable/internal/render"
)

const (
	DefaultLimit   = 10
	DefaultOffset  = 0
	DefaultPadding = 10
)

// Pager computes the page-number window for a paginated result set.
type Pager struct {
	Limit   int
	Offset  int
	Count   int
	Padding int
	Env     environment.Environment
}

// NewPager sanitizes its inputs: a non-positive limit and negative offset or
// count fall back to the defaults.
func NewPager(limit, offset, count int) *Pager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	if count < 0 {
		count = 0
	}
	return &Pager{Limit: limit, Offset: offset, Count: count, Padding: DefaultPadding}
}

// Page is one entry of the pager window.
type Page struct {
	Selected bool
	Number   int
	Limit    int
	Offset   int
	URL      string
}

func (p *Pager) PageCount() int {
	return int(math.Ceil(float64(p.Count) / float64(p.Limit)))
}

func (p *Pager) CurrentPage() int {
	return p.Offset/p.Limit + 1
}

// Pages returns the window around the current page: always page 1 first,
// then a padding-sized run, then the last page when the window stops short
// of it.
func (p *Pager) Pages() []Page {
	pageCount := p.PageCount()
	current := p.CurrentPage()
	start := ((current-1)/p.Padding)*p.Padding + 1

	var pages []Page
	for _, number := range p.window(start, start+p.Padding-1, pageCount) {
		page := Page{
			Selected: number == current,
			Number:   number,
			Limit:    p.Limit,
			Offset:   p.Limit * (number - 1),
		}
		if p.Env != nil {
			page.URL = p.Env.BuildURL(map[string]string{
				"offset": strconv.Itoa(page.Offset),
				"limit":  strconv.Itoa(p.Limit),
			})
		}
		pages = append(pages, page)
	}
	return pages
}

func (p *Pager) window(start, end, max int) []int {
	const min = 1
	numbers := []int{min}
	i := start
	for ; i <= end && i <= max; i++ {
		if i > min {
			numbers = append(numbers, i)
		}
	}
	if i <= max {
		numbers = append(numbers, max)
	}
	return numbers
}

func (p *Pager) HTML() (template.HTML, error) {
	return render.HTML("pager.html", p)
}
