package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Result maps a field to the message of its first failing rule.
// An empty Result means the record passed.
type Result map[string]string

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Has reports whether field has a violation.
func (r Result) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Fields returns the violated fields sorted by name.
func (r Result) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Issues lists the violations in the order fields appear in rules. Fields
// not covered by rules follow in name order.
func (r Result) Issues(rules RuleSet) []Issue {
	issues := make([]Issue, 0, len(r))
	seen := make(map[string]bool, len(r))
	for _, field := range rules.Fields() {
		if msg, ok := r[field]; ok {
			issues = append(issues, Issue{Field: field, Message: msg})
			seen[field] = true
		}
	}
	for _, field := range r.Fields() {
		if !seen[field] {
			issues = append(issues, Issue{Field: field, Message: r[field]})
		}
	}
	return issues
}

// Error implements error so a failed Result can travel through error
// returns when a caller wants one.
func (r Result) Error() string {
	if r.Valid() {
		return "validation passed"
	}
	parts := make([]string, 0, len(r))
	for _, f := range r.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, r[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Issue is one reported violation.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}
