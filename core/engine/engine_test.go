package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"genmaint-cost/core/pricing"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// scenarioBook is the default book with two tiers pinned to the figures
// used throughout these tests
func scenarioBook() *pricing.Book {
	book := pricing.DefaultBook()
	book.ServiceA.Data["251-400"] = pricing.Components{Labor: 8, Mobilization: 2, Parts: 150}
	book.ServiceB.Data["15-30"] = pricing.Components{Labor: 3, Mobilization: 1, FilterCost: 40, OilGallons: 1.5}
	return book
}

func mustEngine(t *testing.T, book *pricing.Book) *Engine {
	t.Helper()
	eng, err := New(book)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng
}

// TestCalculateServiceAScenario prices a 300 kW unit for Service A only:
// (8 + 2) x $180 + $150 = $1,950.00
func TestCalculateServiceAScenario(t *testing.T) {
	eng := mustEngine(t, scenarioBook())

	result, err := eng.Calculate(Request{
		Generators: []types.Generator{{ID: "02 EG 068", KW: 300}},
		Selection:  types.NewServiceSelection(1, types.ServiceA),
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if len(result.Units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(result.Units))
	}
	unit := result.Units[0]
	if unit.TierRange != "251-400" {
		t.Errorf("tier = %q, want 251-400", unit.TierRange)
	}
	if got := result.GrandTotal.StringFixed(2); got != "1950.00" {
		t.Errorf("grand total = %s, want 1950.00", got)
	}
}

// TestCalculateServiceBScenario prices a 20 kW unit for Service B only:
// (3 + 1) x $180 + $40 + 1.5 x $16 x 1.5 = $796.00
func TestCalculateServiceBScenario(t *testing.T) {
	eng := mustEngine(t, scenarioBook())

	result, err := eng.Calculate(Request{
		Generators: []types.Generator{{ID: "62B EG 081", KW: 20}},
		Selection:  types.NewServiceSelection(1, types.ServiceB),
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if got := result.GrandTotal.StringFixed(2); got != "796.00" {
		t.Errorf("grand total = %s, want 796.00", got)
	}
}

// TestCalculatePartialFailure checks one bad unit never aborts the batch
func TestCalculatePartialFailure(t *testing.T) {
	eng := mustEngine(t, scenarioBook())

	result, err := eng.Calculate(Request{
		Generators: []types.Generator{
			{ID: "good-1", KW: 300},
			{ID: "bad", KW: -5},
			{ID: "good-2", KW: 20},
		},
		Selection: types.NewServiceSelection(1, types.ServiceA, types.ServiceB),
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if len(result.Units) != 2 {
		t.Fatalf("expected 2 priced units, got %d", len(result.Units))
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}

	failure := result.Failures[0]
	if failure.Generator.ID != "bad" {
		t.Errorf("failed unit = %q, want bad", failure.Generator.ID)
	}
	if failure.ErrorType != string(errors.TypeUnclassifiable) {
		t.Errorf("failure type = %q, want %s", failure.ErrorType, errors.TypeUnclassifiable)
	}

	sum := decimal.Zero
	for _, unit := range result.Units {
		sum = sum.Add(unit.AnnualTotal)
	}
	if !result.GrandTotal.Equal(sum) {
		t.Errorf("grand total %s != sum of unit totals %s", result.GrandTotal, sum)
	}
}

// TestCalculateOrderIndependent checks the grand total does not depend on
// generator iteration order
func TestCalculateOrderIndependent(t *testing.T) {
	eng := mustEngine(t, scenarioBook())
	sel := types.NewServiceSelection(1, types.ServiceA, types.ServiceB, types.ServiceE)

	fleet := []types.Generator{
		{ID: "a", KW: 20}, {ID: "b", KW: 300}, {ID: "c", KW: 1300},
		{ID: "d", KW: 99}, {ID: "e", KW: 2000}, {ID: "f", KW: 550},
	}
	reversed := make([]types.Generator, len(fleet))
	for i, gen := range fleet {
		reversed[len(fleet)-1-i] = gen
	}

	forward, err := eng.Calculate(Request{Generators: fleet, Selection: sel})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	backward, err := eng.Calculate(Request{Generators: reversed, Selection: sel})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if !forward.GrandTotal.Equal(backward.GrandTotal) {
		t.Errorf("grand total depends on order: %s vs %s",
			forward.GrandTotal, backward.GrandTotal)
	}
}

// TestCalculateFrequencyMultiplies checks annual = per-visit x frequency
func TestCalculateFrequencyMultiplies(t *testing.T) {
	eng := mustEngine(t, scenarioBook())

	result, err := eng.Calculate(Request{
		Generators: []types.Generator{{ID: "02 EG 068", KW: 300}},
		Selection:  types.NewServiceSelection(4, types.ServiceA),
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	sc, ok := result.Units[0].ServiceFor(types.ServiceA)
	if !ok {
		t.Fatal("service A missing from unit result")
	}
	if sc.Frequency != 4 {
		t.Errorf("frequency = %d, want 4", sc.Frequency)
	}
	if got := sc.Annual.StringFixed(2); got != "7800.00" {
		t.Errorf("annual = %s, want 7800.00", got)
	}
	if got := result.GrandTotal.StringFixed(2); got != "7800.00" {
		t.Errorf("grand total = %s, want 7800.00", got)
	}
}

// TestCalculateByServiceTotals checks the per-service rollup
func TestCalculateByServiceTotals(t *testing.T) {
	eng := mustEngine(t, scenarioBook())

	result, err := eng.Calculate(Request{
		Generators: []types.Generator{
			{ID: "u1", KW: 300},
			{ID: "u2", KW: 300},
		},
		Selection: types.NewServiceSelection(1, types.ServiceA),
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	total, ok := result.ByService[types.ServiceA]
	if !ok {
		t.Fatal("service A missing from rollup")
	}
	if got := total.StringFixed(2); got != "3900.00" {
		t.Errorf("service A total = %s, want 3900.00", got)
	}
}

// TestCalculateServiceDFluids checks Service D pricing through the engine
func TestCalculateServiceDFluids(t *testing.T) {
	eng := mustEngine(t, scenarioBook())

	sel := types.NewServiceSelection(1, types.ServiceD)
	sel.Fluids = []types.FluidKind{types.FluidOil, types.FluidFuel, types.FluidCoolant}

	result, err := eng.Calculate(Request{
		Generators: []types.Generator{{ID: "u1", KW: 300}},
		Selection:  sel,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// 16.55 + 60.00 + 16.55
	if got := result.GrandTotal.StringFixed(2); got != "93.10" {
		t.Errorf("grand total = %s, want 93.10", got)
	}
	sc, _ := result.Units[0].ServiceFor(types.ServiceD)
	if sc.TierRange != "" {
		t.Errorf("service D carries tier %q, want none", sc.TierRange)
	}
}

// TestCalculateRequestValidation checks bad requests abort up front
func TestCalculateRequestValidation(t *testing.T) {
	eng := mustEngine(t, scenarioBook())
	gen := []types.Generator{{ID: "u1", KW: 300}}

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "no generators",
			req:  Request{Selection: types.NewServiceSelection(1, types.ServiceA)},
		},
		{
			name: "no services",
			req:  Request{Generators: gen},
		},
		{
			name: "unknown service code",
			req: Request{
				Generators: gen,
				Selection:  types.ServiceSelection{Frequencies: map[types.ServiceCode]int{"X": 1}},
			},
		},
		{
			name: "service D without fluids",
			req: Request{
				Generators: gen,
				Selection:  types.NewServiceSelection(1, types.ServiceD),
			},
		},
		{
			name: "negative escalation",
			req: Request{
				Generators:     gen,
				Selection:      types.NewServiceSelection(1, types.ServiceA),
				EscalationRate: -0.03,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Calculate(tt.req)
			if err == nil {
				t.Fatal("expected validation error, got none")
			}
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected %s, got %v", errors.TypeInput, err)
			}
		})
	}
}

// TestNewRejectsBrokenBook checks engine construction validates the book
func TestNewRejectsBrokenBook(t *testing.T) {
	book := pricing.DefaultBook()
	book.LaborRate = 0

	if _, err := New(book); err == nil {
		t.Fatal("expected configuration error, got none")
	}
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil book, got none")
	}
}
