package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genreChoices() []Choice {
	return []Choice{
		{Name: "pop", Description: "Pop"},
		{Name: "rock", Description: "Rock"},
	}
}

func TestNewSelectFilter_PrependsAll(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{}, "")

	require.Len(t, f.Choices, 3)
	assert.Equal(t, ChoiceAll, f.Choices[0].Name)
	assert.Equal(t, "select.genre", f.ArgName())
}

func TestSelectFilter_NoSelection(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{}, "")

	cl, err := f.Query()
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, "genre IN (?, ?, ?)", cl.SQL)
	assert.Equal(t, []any{"all", "pop", "rock"}, cl.Args)
}

func TestSelectFilter_All(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{"select.genre": "all"}, "")

	cl, err := f.Query()
	require.NoError(t, err)
	assert.Nil(t, cl)
}

func TestSelectFilter_Choice(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{"select.genre": "rock"}, "")

	cl, err := f.Query()
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, "genre = ?", cl.SQL)
	assert.Equal(t, []any{"rock"}, cl.Args)
}

func TestSelectFilter_BadChoice(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{"select.genre": "ska"}, "")

	cl, err := f.Query()
	assert.Nil(t, cl)
	assert.ErrorIs(t, err, ErrBadChoice)
}

func TestSelectFilter_Default(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{}, "pop")

	assert.Equal(t, "pop", f.Selected())
	assert.True(t, f.IsSelected("pop"))

	cl, err := f.Query()
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, []any{"pop"}, cl.Args)
}

func TestSelectFilter_ArgOverridesDefault(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{"select.genre": "rock"}, "pop")

	assert.Equal(t, "rock", f.Selected())
}

func TestSelectFilter_HTML(t *testing.T) {
	f := NewSelectFilter("genre", "genre", genreChoices(), Args{"select.genre": "rock"}, "")

	html, err := f.HTML()
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `name="select.genre"`)
	assert.Contains(t, out, `value="rock" selected`)
	assert.Contains(t, out, `value="all"`)
}

func TestNullSelectableSelectFilter(t *testing.T) {
	f := NewNullSelectableSelectFilter("note", "note", nil, Args{"select.note": "null"}, "")

	cl, err := f.Query()
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, "note IS NULL", cl.SQL)
	assert.Empty(t, cl.Args)

	f = NewNullSelectableSelectFilter("note", "note", nil, Args{"select.note": "not-null"}, "")
	cl, err = f.Query()
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, "note IS NOT NULL", cl.SQL)
}

func TestNullSelectableSelectFilter_FallsBack(t *testing.T) {
	f := NewNullSelectableSelectFilter("genre", "genre", genreChoices(), Args{"select.genre": "rock"}, "")

	cl, err := f.Query()
	require.NoError(t, err)
	require.NotNil(t, cl)
	assert.Equal(t, "genre = ?", cl.SQL)
}

func TestLimit(t *testing.T) {
	l := NewLimit("music", Args{}, 25)

	cl, err := l.Query()
	require.NoError(t, err)
	assert.Nil(t, cl)

	html, err := l.HTML()
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `value="25" selected`)
	assert.Contains(t, out, `value="100"`)
}

func TestCategoryLinks(t *testing.T) {
	c := NewCategory("genre", "genre", genreChoices(), Args{"select.genre": "rock"}, "")

	links := c.Links()
	require.Len(t, links, 3)
	assert.False(t, links[0].Selected)
	assert.True(t, links[2].Selected)
	// No environment bound, so no navigation URLs.
	for _, link := range links {
		assert.Empty(t, link.URL)
	}
}
