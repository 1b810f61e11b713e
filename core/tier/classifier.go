// Package tier classifies generator kW ratings into pricing tiers.
//
// The tier table is the industry-standard set of generator size buckets the
// pricing book is keyed by. Each tier covers the half-open interval from its
// labeled minimum up to (but excluding) the next tier's labeled minimum, so
// the labels' cosmetic gaps (e.g. 31-34 between "15-30" and "35-150") belong
// to the tier below. The top tier is unbounded above.
package tier

import (
	"math"

	"genmaint-cost/internal/errors"
)

// Range is one kW pricing tier
type Range struct {
	// Label is the range name used as the lookup key in the pricing book
	Label string `json:"label"`

	// Min is the inclusive lower bound in kW
	Min float64 `json:"min"`

	// Category is the descriptive size class used in reports
	Category string `json:"category"`
}

// ranges is the canonical tier table, ascending by Min.
// Labels must match the pricing book's table keys exactly.
var ranges = []Range{
	{Label: "2-14", Min: 2, Category: "Very Small Units"},
	{Label: "15-30", Min: 15, Category: "Small Units"},
	{Label: "35-150", Min: 35, Category: "Medium Units"},
	{Label: "151-250", Min: 151, Category: "Large Units"},
	{Label: "251-400", Min: 251, Category: "Very Large Units"},
	{Label: "401-500", Min: 401, Category: "Extra Large Units"},
	{Label: "501-670", Min: 501, Category: "Industrial Units"},
	{Label: "671-1050", Min: 671, Category: "Large Industrial"},
	{Label: "1051-1500", Min: 1051, Category: "Very Large Industrial"},
	{Label: "1501+", Min: 1501, Category: "Extra Large Industrial"},
}

// Ranges returns the canonical tier table, ascending by minimum kW
func Ranges() []Range {
	out := make([]Range, len(ranges))
	copy(out, ranges)
	return out
}

// Labels returns the tier labels in ascending order
func Labels() []string {
	labels := make([]string, len(ranges))
	for i, r := range ranges {
		labels[i] = r.Label
	}
	return labels
}

// Classify maps a kW rating to its pricing tier.
// Ratings below the smallest tier minimum, zero, negative, or non-finite
// values are unclassifiable; they must never silently default to a tier.
func Classify(kw float64) (Range, error) {
	if math.IsNaN(kw) || math.IsInf(kw, 0) {
		return Range{}, errors.Unclassifiable(kw)
	}
	if kw < ranges[0].Min {
		return Range{}, errors.Unclassifiable(kw)
	}

	// Last tier whose minimum does not exceed kw.
	matched := ranges[0]
	for _, r := range ranges[1:] {
		if kw < r.Min {
			break
		}
		matched = r
	}
	return matched, nil
}
