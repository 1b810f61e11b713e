package service

import (
	"testing"

	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// testBook builds a book with known figures for a single tier
func testBook() *pricing.Book {
	return &pricing.Book{
		RateSettings: pricing.RateSettings{
			LaborRate:     180,
			OilPrice:      16,
			OilMarkup:     1.5,
			CoolantPrice:  16,
			CoolantMarkup: 1.5,
			PartsMarkup:   1.25,
		},
		ServiceA: pricing.ServiceTable{Data: map[string]pricing.Components{
			"251-400": {Labor: 8, Mobilization: 2, Parts: 150},
		}},
		ServiceB: pricing.ServiceTable{Data: map[string]pricing.Components{
			"15-30": {Labor: 3, Mobilization: 1, FilterCost: 40, OilGallons: 1.5},
		}},
		ServiceC: pricing.ServiceTable{Data: map[string]pricing.Components{
			"15-30": {Labor: 2, Mobilization: 1, CoolantGallons: 3, HoseBeltCost: 55},
		}},
		ServiceD: pricing.AnalysisFees{Oil: 16.55, Coolant: 16.55, Fuel: 60},
		ServiceE: pricing.ServiceTable{Data: map[string]pricing.Components{
			"251-400": {Labor: 4, Mobilization: 2, LoadBankRental: 650, DeliveryCost: 200},
			"501-670": {Labor: 5, Mobilization: 2, LoadBankRental: 950, TransformerRental: 350, DeliveryCost: 250},
		}},
	}
}

// TestInspectionCost checks the Service A formula:
// (8 + 2) x $180 + $150 = $1,950.00
func TestInspectionCost(t *testing.T) {
	visit, err := (Inspection{}).Cost(testBook(), "251-400", types.ServiceSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := visit.Total().StringFixed(2); got != "1950.00" {
		t.Errorf("total = %s, want 1950.00", got)
	}
	if got := visit.Labor.StringFixed(2); got != "1800.00" {
		t.Errorf("labor = %s, want 1800.00", got)
	}
	if got := visit.Materials.StringFixed(2); got != "150.00" {
		t.Errorf("materials = %s, want 150.00", got)
	}
}

// TestOilFilterCost checks the Service B formula:
// (3 + 1) x $180 + $40 + 1.5 gal x $16 x 1.5 = $796.00
func TestOilFilterCost(t *testing.T) {
	visit, err := (OilFilter{}).Cost(testBook(), "15-30", types.ServiceSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := visit.Total().StringFixed(2); got != "796.00" {
		t.Errorf("total = %s, want 796.00", got)
	}
	if got := visit.Materials.StringFixed(2); got != "76.00" {
		t.Errorf("materials = %s, want 76.00", got)
	}
}

// TestCoolantCost checks the Service C formula:
// (2 + 1) x $180 + 3 gal x $24 + $55 = $667.00
func TestCoolantCost(t *testing.T) {
	visit, err := (Coolant{}).Cost(testBook(), "15-30", types.ServiceSelection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := visit.Total().StringFixed(2); got != "667.00" {
		t.Errorf("total = %s, want 667.00", got)
	}
}

// TestFluidAnalysisCost checks Service D: flat fees, no labor, no tier
func TestFluidAnalysisCost(t *testing.T) {
	tests := []struct {
		name   string
		fluids []types.FluidKind
		want   string
	}{
		{"oil only", []types.FluidKind{types.FluidOil}, "16.55"},
		{"oil and fuel", []types.FluidKind{types.FluidOil, types.FluidFuel}, "76.55"},
		{
			"all three",
			[]types.FluidKind{types.FluidOil, types.FluidFuel, types.FluidCoolant},
			"93.10",
		},
		{
			"duplicates count once",
			[]types.FluidKind{types.FluidOil, types.FluidOil},
			"16.55",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := types.ServiceSelection{Fluids: tt.fluids}
			visit, err := (FluidAnalysis{}).Cost(testBook(), "", sel)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !visit.Labor.IsZero() {
				t.Errorf("labor = %s, want 0", visit.Labor)
			}
			if got := visit.Total().StringFixed(2); got != tt.want {
				t.Errorf("total = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestFluidAnalysisRequiresFluids checks the empty-selection error
func TestFluidAnalysisRequiresFluids(t *testing.T) {
	_, err := (FluidAnalysis{}).Cost(testBook(), "", types.ServiceSelection{})
	if err == nil {
		t.Fatal("expected error for empty fluid selection")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected %s, got %v", errors.TypeInput, err)
	}
}

// TestLoadBankCost checks Service E with and without transformer rental
func TestLoadBankCost(t *testing.T) {
	tests := []struct {
		tier string
		want string
	}{
		// (4+2) x 180 + 650 + 0 + 200
		{"251-400", "1930.00"},
		// (5+2) x 180 + 950 + 350 + 250
		{"501-670", "2810.00"},
	}

	for _, tt := range tests {
		visit, err := (LoadBank{}).Cost(testBook(), tt.tier, types.ServiceSelection{})
		if err != nil {
			t.Fatalf("tier %s: unexpected error: %v", tt.tier, err)
		}
		if got := visit.Total().StringFixed(2); got != tt.want {
			t.Errorf("tier %s: total = %s, want %s", tt.tier, got, tt.want)
		}
	}
}

// TestCalculatorsArePure checks identical inputs give identical outputs
func TestCalculatorsArePure(t *testing.T) {
	book := testBook()
	sel := types.ServiceSelection{Fluids: []types.FluidKind{types.FluidOil}}

	cases := []struct {
		calc Calculator
		tier string
	}{
		{Inspection{}, "251-400"},
		{OilFilter{}, "15-30"},
		{Coolant{}, "15-30"},
		{FluidAnalysis{}, ""},
		{LoadBank{}, "251-400"},
	}

	for _, tc := range cases {
		first, err := tc.calc.Cost(book, tc.tier, sel)
		if err != nil {
			t.Fatalf("%s: %v", tc.calc.Code(), err)
		}
		second, err := tc.calc.Cost(book, tc.tier, sel)
		if err != nil {
			t.Fatalf("%s: %v", tc.calc.Code(), err)
		}
		if !first.Total().Equal(second.Total()) {
			t.Errorf("%s: totals drifted: %s then %s",
				tc.calc.Code(), first.Total(), second.Total())
		}
	}
}

// TestHigherLaborRateNeverCheaper checks cost monotonicity in the rate
func TestHigherLaborRateNeverCheaper(t *testing.T) {
	lower := testBook()
	higher := testBook()
	higher.LaborRate = 215

	for _, calc := range []Calculator{Inspection{}, LoadBank{}} {
		cheap, err := calc.Cost(lower, "251-400", types.ServiceSelection{})
		if err != nil {
			t.Fatalf("%s: %v", calc.Code(), err)
		}
		dear, err := calc.Cost(higher, "251-400", types.ServiceSelection{})
		if err != nil {
			t.Fatalf("%s: %v", calc.Code(), err)
		}
		if dear.Total().LessThan(cheap.Total()) {
			t.Errorf("%s: cost decreased when labor rate increased: %s -> %s",
				calc.Code(), cheap.Total(), dear.Total())
		}
	}
}

// TestForReturnsAllCalculators checks the closed set is complete
func TestForReturnsAllCalculators(t *testing.T) {
	for _, code := range types.AllServices {
		calc, err := For(code)
		if err != nil {
			t.Fatalf("For(%s): %v", code, err)
		}
		if calc.Code() != code {
			t.Errorf("For(%s) returned calculator for %s", code, calc.Code())
		}
	}

	if _, err := For("X"); err == nil {
		t.Error("For(X): expected error for unknown code")
	}
}
