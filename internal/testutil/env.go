package testutil

// StaticEnvironment satisfies environment.Environment with fixed values,
// for tests that only need a URL to appear in rendered output.
type StaticEnvironment struct {
	URL  string
	Lang string
}

func (e StaticEnvironment) BuildURL(overrides map[string]string) string {
	return e.URL
}

func (e StaticEnvironment) Locale() string {
	if e.Lang == "" {
		return "en"
	}
	return e.Lang
}
