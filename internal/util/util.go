// Package util holds the small helpers shared across the table engine:
// name conversion, dotted attribute lookup and datum formatting.
package util

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var (
	firstCapRe = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCapRe   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// CamelToUnderscore converts a CamelCase name to underscore_with_lower_case,
// e.g. "SomeEntityName" becomes "some_entity_name".
func CamelToUnderscore(name string) string {
	s := firstCapRe.ReplaceAllString(name, "${1}_${2}")
	return strings.ToLower(allCapRe.ReplaceAllString(s, "${1}_${2}"))
}

// Attr resolves a dotted field path ("Artist.Name") against data by
// reflection. Nil pointers along the chain or missing fields yield def.
func Attr(data any, path string, def any) any {
	if data == nil {
		return def
	}
	v := reflect.ValueOf(data)
	for _, name := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return def
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return def
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return def
		}
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return def
		}
		v = v.Elem()
	}
	return v.Interface()
}

// StringLiteral formats a datum for display. Nil renders as the empty string.
func StringLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
