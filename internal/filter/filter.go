// Package filter narrows in-memory collections by category tag or free-text
// query.
//
// Both filters are pure: the input slice is never modified, matches keep
// their relative order and a filter that matches nothing returns an empty,
// non-nil slice. Filters compose by feeding one's output to the next, which
// is how [Apply] runs a list of [Criterion] values.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the category sentinel that disables category filtering.
const All = "All"

// FieldCategory is the field ByCategory compares against.
const FieldCategory = "category"

// Item exposes named text fields for filtering. Unknown fields return "".
type Item interface {
	Field(name string) string
}

// Fields is a generic Item backed by a map.
type Fields map[string]string

// Field returns f[name].
func (f Fields) Field(name string) string {
	return f[name]
}

// ByCategory keeps items whose category equals category exactly.
// All and "" return items unchanged.
func ByCategory[T Item](items []T, category string) []T {
	if category == All || category == "" {
		return items
	}
	return keep(items, func(it T) bool {
		return it.Field(FieldCategory) == category
	})
}

// ByText keeps items where any of fields contains query, ignoring case.
// The query is trimmed first; a blank query returns items unchanged.
func ByText[T Item](items []T, query string, fields []string) []T {
	q := Normalize(query)
	if q == "" {
		return items
	}
	lower := cases.Lower(language.Und)
	return keep(items, func(it T) bool {
		for _, name := range fields {
			if strings.Contains(lower.String(it.Field(name)), q) {
				return true
			}
		}
		return false
	})
}

// Normalize trims and lowercases a search query.
func Normalize(query string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(query))
}

func keep[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}
