// Package condition builds the WHERE and ORDER BY fragments of a table
// query from request arguments: substring search, typed equality, choice
// filters and sort criteria.
package condition

import (
	"errors"
	"net/url"
	"strings"
)

// ErrBadChoice reports a filter selection outside the declared choice set.
var ErrBadChoice = errors.New("unexpected filter choice")

// Clause is a SQL fragment with `?` placeholders and its bound arguments.
// Placeholders are renumbered to positional parameters by the executor.
type Clause struct {
	SQL  string
	Args []any
}

// FalseClause matches no rows. Used when a typed filter cannot parse its
// input: the table shows an empty result instead of failing the request.
func FalseClause() *Clause {
	return &Clause{SQL: "FALSE"}
}

// Queryable yields a WHERE fragment. A nil clause means no constraint.
type Queryable interface {
	Query() (*Clause, error)
}

// Or combines clauses with OR, skipping nils. Returns nil when nothing
// remains.
func Or(clauses ...*Clause) *Clause {
	var parts []string
	var args []any
	for _, cl := range clauses {
		if cl == nil {
			continue
		}
		parts = append(parts, cl.SQL)
		args = append(args, cl.Args...)
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return &Clause{SQL: parts[0], Args: args}
	default:
		return &Clause{SQL: "(" + strings.Join(parts, " OR ") + ")", Args: args}
	}
}

// Args is the request query-argument mapping filters read from.
type Args map[string]string

func (a Args) Get(key string) string {
	return a[key]
}

// ArgsFromValues flattens url.Values, keeping the first value per key.
func ArgsFromValues(values url.Values) Args {
	args := make(Args, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			args[key] = vs[0]
		}
	}
	return args
}

// SearchName holds the query-argument names of a table's search box.
type SearchName struct {
	Word string
	Type string
}

// SearchNameFor derives the search argument names for a table identifier,
// e.g. "music" yields "search_music.word" and "search_music.type".
func SearchNameFor(identifier string) SearchName {
	return SearchName{
		Word: "search_" + identifier + ".word",
		Type: "search_" + identifier + ".type",
	}
}
