//go:build property

package filter

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var categories = []string{"Political", "Economic", "Social", "Security"}

func genItems() gopter.Gen {
	item := gopter.CombineGens(
		gen.IntRange(0, len(categories)-1),
		gen.AlphaString(),
	).Map(func(vals []any) Fields {
		return Fields{
			"category": categories[vals[0].(int)],
			"name":     vals[1].(string),
		}
	})
	return gen.SliceOf(item)
}

// isSubsequence reports whether sub appears in seq in the same relative order.
func isSubsequence(sub, seq []Fields) bool {
	i := 0
	for _, it := range seq {
		if i < len(sub) && reflect.DeepEqual(sub[i], it) {
			i++
		}
	}
	return i == len(sub)
}

func TestFilterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("All returns the input", prop.ForAll(
		func(items []Fields) bool {
			return reflect.DeepEqual(ByCategory(items, All), items)
		},
		genItems(),
	))

	properties.Property("category filter keeps only that category, in order", prop.ForAll(
		func(items []Fields, idx int) bool {
			c := categories[idx]
			got := ByCategory(items, c)
			for _, it := range got {
				if it["category"] != c {
					return false
				}
			}
			return isSubsequence(got, items)
		},
		genItems(),
		gen.IntRange(0, len(categories)-1),
	))

	properties.Property("text filter preserves order", prop.ForAll(
		func(items []Fields, q string) bool {
			return isSubsequence(ByText(items, q, []string{"name", "category"}), items)
		},
		genItems(),
		gen.AlphaString(),
	))

	properties.Property("blank query returns the input", prop.ForAll(
		func(items []Fields) bool {
			return reflect.DeepEqual(ByText(items, "  ", []string{"name"}), items)
		},
		genItems(),
	))

	properties.TestingRun(t)
}
