package filter

import (
	"fmt"

	"github.com/thoreinstein/munconf/internal/errors"
)

// Kind selects which filter a Criterion applies.
type Kind string

const (
	// KindCategory matches the category field exactly.
	KindCategory Kind = "category"
	// KindText matches a substring across text fields.
	KindText Kind = "text"
)

// Criterion is one filter step.
type Criterion struct {
	Kind  Kind
	Value string
	// Fields lists the text fields searched by KindText.
	Fields []string
}

// Category returns a category criterion.
func Category(value string) Criterion {
	return Criterion{Kind: KindCategory, Value: value}
}

// Text returns a text criterion searching fields.
func Text(value string, fields ...string) Criterion {
	return Criterion{Kind: KindText, Value: value, Fields: fields}
}

// Validate rejects unknown kinds and text criteria without fields.
func (c Criterion) Validate() error {
	switch c.Kind {
	case KindCategory:
		return nil
	case KindText:
		if len(c.Fields) == 0 {
			return errors.New("text criterion needs at least one field")
		}
		return nil
	default:
		return errors.Newf("unknown criterion kind %q", c.Kind)
	}
}

func (c Criterion) String() string {
	return fmt.Sprintf("%s=%q", c.Kind, c.Value)
}

// Apply runs criteria in order, each narrowing the previous result.
// Criteria that fail Validate are skipped.
func Apply[T Item](items []T, criteria ...Criterion) []T {
	out := items
	for _, c := range criteria {
		if c.Validate() != nil {
			continue
		}
		switch c.Kind {
		case KindCategory:
			out = ByCategory(out, c.Value)
		case KindText:
			out = ByText(out, c.Value, c.Fields)
		}
	}
	return out
}
