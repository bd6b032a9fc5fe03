package environment

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var supportedLocales = []string{"ko", "ja", "en"}

const fallbackLocale = "ko"

// GinEnvironment binds the table engine to a gin request.
type GinEnvironment struct {
	c *gin.Context
}

func NewGinEnvironment(c *gin.Context) *GinEnvironment {
	return &GinEnvironment{c: c}
}

func (e *GinEnvironment) BuildURL(overrides map[string]string) string {
	query := e.c.Request.URL.Query()
	for key, value := range overrides {
		query.Set(key, value)
	}
	encoded := query.Encode()
	if encoded == "" {
		return e.c.Request.URL.Path
	}
	return e.c.Request.URL.Path + "?" + encoded
}

func (e *GinEnvironment) Locale() string {
	header := e.c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexAny(tag, ";-"); i >= 0 {
			tag = tag[:i]
		}
		for _, supported := range supportedLocales {
			if tag == supported {
				return supported
			}
		}
	}
	return fallbackLocale
}
