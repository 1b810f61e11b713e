package tier

import (
	"math"
	"testing"

	"genmaint-cost/internal/errors"
)

// TestClassifyInteriorValues checks values strictly inside each range
func TestClassifyInteriorValues(t *testing.T) {
	tests := []struct {
		kw    float64
		label string
	}{
		{5, "2-14"},
		{20, "15-30"},
		{80, "35-150"},
		{200, "151-250"},
		{300, "251-400"},
		{450, "401-500"},
		{600, "501-670"},
		{900, "671-1050"},
		{1300, "1051-1500"},
		{2000, "1501+"},
	}

	for _, tt := range tests {
		r, err := Classify(tt.kw)
		if err != nil {
			t.Fatalf("Classify(%v): unexpected error: %v", tt.kw, err)
		}
		if r.Label != tt.label {
			t.Errorf("Classify(%v) = %q, want %q", tt.kw, r.Label, tt.label)
		}
	}
}

// TestClassifyBoundaries checks the half-open interval policy: each tier
// owns [min, nextMin), so label gaps resolve to the tier below.
func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		kw    float64
		label string
	}{
		{"smallest valid rating", 2, "2-14"},
		{"just below a tier minimum", 14.9, "2-14"},
		{"exact tier minimum", 15, "15-30"},
		{"labeled gap 31-34 stays in tier below", 31, "15-30"},
		{"top of labeled gap", 34, "15-30"},
		{"next tier minimum after gap", 35, "35-150"},
		{"gap between 670 and 671", 670.5, "501-670"},
		{"exact top tier minimum", 1501, "1501+"},
		{"top tier is unbounded", 50000, "1501+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Classify(tt.kw)
			if err != nil {
				t.Fatalf("Classify(%v): unexpected error: %v", tt.kw, err)
			}
			if r.Label != tt.label {
				t.Errorf("Classify(%v) = %q, want %q", tt.kw, r.Label, tt.label)
			}
		})
	}
}

// TestClassifyUnclassifiable checks that out-of-range ratings never
// silently default to a tier
func TestClassifyUnclassifiable(t *testing.T) {
	tests := []struct {
		name string
		kw   float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"below smallest tier", 1.5},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.kw)
			if err == nil {
				t.Fatalf("Classify(%v): expected error, got none", tt.kw)
			}
			if !errors.IsType(err, errors.TypeUnclassifiable) {
				t.Errorf("Classify(%v): expected %s, got %v", tt.kw, errors.TypeUnclassifiable, err)
			}
		})
	}
}

// TestClassifyDeterministic checks repeated classification is stable
func TestClassifyDeterministic(t *testing.T) {
	for _, kw := range []float64{2, 31, 300, 670.5, 1501, 9000} {
		first, err := Classify(kw)
		if err != nil {
			t.Fatalf("Classify(%v): %v", kw, err)
		}
		second, err := Classify(kw)
		if err != nil {
			t.Fatalf("Classify(%v): %v", kw, err)
		}
		if first.Label != second.Label {
			t.Errorf("Classify(%v) unstable: %q then %q", kw, first.Label, second.Label)
		}
	}
}

// TestRangesContiguous checks the canonical table is sorted and gap-free
// under the half-open policy
func TestRangesContiguous(t *testing.T) {
	all := Ranges()
	if len(all) != 10 {
		t.Fatalf("expected 10 tiers, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Min <= all[i-1].Min {
			t.Errorf("tier %q minimum %v not above previous %q minimum %v",
				all[i].Label, all[i].Min, all[i-1].Label, all[i-1].Min)
		}
	}
}
