// Package environment abstracts the web framework the table is embedded in:
// URL construction for sort/page navigation and locale selection.
package environment

// Environment is what the table engine needs from its host framework.
type Environment interface {
	// BuildURL returns the current request's URL with the given query
	// arguments replaced and every other argument preserved.
	BuildURL(overrides map[string]string) string

	// Locale is the negotiated display locale of the current request.
	Locale() string
}
