package validation

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// emailPattern accepts local@label(.label)*.tld where local has no '@' and
// the final label is at least two letters. EmailFormat also rejects any
// Unicode whitespace.
var emailPattern = regexp.MustCompile(`(?i)^[^@\s]+@(?:[a-z0-9-]+\.)+[a-z]{2,}$`)

// NonEmpty passes strings that are non-empty after trimming.
func NonEmpty(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsTrue passes only the boolean true.
func IsTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

// EmailFormat passes strings shaped like local@domain.tld.
func EmailFormat(value any) bool {
	s, ok := value.(string)
	return ok && !strings.ContainsFunc(s, unicode.IsSpace) && emailPattern.MatchString(s)
}

// OneOf returns a predicate passing strings equal to one of allowed.
func OneOf(allowed ...string) Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && slices.Contains(allowed, s)
	}
}
