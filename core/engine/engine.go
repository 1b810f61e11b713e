// Package engine runs whole-fleet cost calculations: classify each
// generator, price every selected service, and roll up contract totals.
// A calculation is a stateless batch; the result is recomputed wholesale
// from its inputs every time.
package engine

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"genmaint-cost/core/pricing"
	"genmaint-cost/core/service"
	"genmaint-cost/core/tier"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
	"genmaint-cost/internal/logging"
)

// Request describes one calculation
type Request struct {
	// Generators is the fleet to price
	Generators []types.Generator `json:"generators"`

	// Selection declares the active services and their annual frequencies
	Selection types.ServiceSelection `json:"selection"`

	// ContractYears is the contract length including the base year.
	// Zero or one means a single-year total with no escalation schedule.
	ContractYears int `json:"contract_years,omitempty"`

	// EscalationRate is the annual escalation applied to option years
	// (e.g. 0.03 for 3%)
	EscalationRate float64 `json:"escalation_rate,omitempty"`
}

// Engine prices generator fleets against a validated pricing book
type Engine struct {
	book *pricing.Book
	log  *zap.Logger
}

// New creates an engine. The book is validated once here so that per-unit
// pricing can trust every tier and rate it reads.
func New(book *pricing.Book) (*Engine, error) {
	if book == nil {
		return nil, errors.Config("pricingBook", "no pricing book supplied")
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		book: book,
		log:  logging.Named("engine"),
	}, nil
}

// Book returns the engine's pricing book
func (e *Engine) Book() *pricing.Book {
	return e.book
}

// Calculate prices the whole fleet. Generators whose kW rating classifies
// into no tier are recorded as failures and skipped; the batch continues.
// Configuration problems abort the calculation entirely.
func (e *Engine) Calculate(req Request) (*types.BatchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	result := &types.BatchResult{
		ByService:      make(map[types.ServiceCode]decimal.Decimal, len(req.Selection.Frequencies)),
		LaborTotal:     types.Zero(),
		MaterialsTotal: types.Zero(),
		GrandTotal:     types.Zero(),
		Currency:       types.CurrencyUSD,
		CreatedAt:      time.Now().UTC(),
	}

	for _, gen := range req.Generators {
		unit, err := e.priceUnit(gen, req.Selection)
		if err != nil {
			if errors.IsType(err, errors.TypeUnclassifiable) {
				e.log.Warn("skipping unclassifiable generator",
					zap.String("asset_id", gen.ID),
					zap.Float64("kw", gen.KW))
				result.Failures = append(result.Failures, types.Failure{
					Generator: gen,
					Reason:    err.Error(),
					ErrorType: string(errors.TypeUnclassifiable),
				})
				continue
			}
			// Anything else means the book is unusable; wrong numbers
			// downstream are worse than no numbers.
			return nil, err
		}

		result.Units = append(result.Units, unit)
		result.GrandTotal = result.GrandTotal.Add(unit.AnnualTotal)
		for _, sc := range unit.Services {
			result.ByService[sc.Service] = result.ByService[sc.Service].Add(sc.Annual)
			freq := decimalFromInt(sc.Frequency)
			result.LaborTotal = result.LaborTotal.Add(sc.Labor.Mul(freq))
			result.MaterialsTotal = result.MaterialsTotal.Add(sc.Materials.Mul(freq))
		}
	}

	result.LaborTotal = types.Cents(result.LaborTotal)
	result.MaterialsTotal = types.Cents(result.MaterialsTotal)
	result.Years = escalationSchedule(result.GrandTotal, req.ContractYears, req.EscalationRate)

	e.log.Info("calculation complete",
		zap.Int("units", len(result.Units)),
		zap.Int("failures", len(result.Failures)),
		zap.String("grand_total", result.GrandTotal.StringFixed(2)))

	return result, nil
}

// priceUnit prices every selected service for one generator
func (e *Engine) priceUnit(gen types.Generator, sel types.ServiceSelection) (types.UnitResult, error) {
	tierRange, err := tier.Classify(gen.KW)
	if err != nil {
		return types.UnitResult{}, err
	}

	unit := types.UnitResult{
		Generator:   gen,
		TierRange:   tierRange.Label,
		AnnualTotal: types.Zero(),
	}

	for _, code := range sel.Services() {
		calc, err := service.For(code)
		if err != nil {
			return types.UnitResult{}, err
		}

		visit, err := calc.Cost(e.book, tierRange.Label, sel)
		if err != nil {
			return types.UnitResult{}, err
		}

		freq := sel.Frequency(code)
		perVisit := types.Cents(visit.Total())
		annual := types.Cents(perVisit.Mul(decimalFromInt(freq)))

		sc := types.ServiceCost{
			Service:   code,
			Label:     code.Label(),
			Labor:     types.Cents(visit.Labor),
			Materials: types.Cents(visit.Materials),
			PerVisit:  perVisit,
			Frequency: freq,
			Annual:    annual,
		}
		if code != types.ServiceD {
			sc.TierRange = tierRange.Label
		}

		unit.Services = append(unit.Services, sc)
		unit.AnnualTotal = unit.AnnualTotal.Add(annual)
	}

	return unit, nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func validateRequest(req Request) error {
	if len(req.Generators) == 0 {
		return errors.Input("no generators to price")
	}

	active := req.Selection.Services()
	if len(active) == 0 {
		return errors.Input("no services selected")
	}
	for code, freq := range req.Selection.Frequencies {
		if !code.Valid() {
			return errors.Newf(errors.TypeInput, "unknown service code: %q", code)
		}
		if freq < 0 {
			return errors.Newf(errors.TypeInput, "service %s: frequency must be non-negative", code)
		}
	}
	if req.Selection.Frequency(types.ServiceD) > 0 && len(req.Selection.Fluids) == 0 {
		return errors.Input("service D selected without any fluid samples")
	}

	if req.ContractYears < 0 {
		return errors.Input("contract years must be non-negative")
	}
	if req.EscalationRate < 0 {
		return errors.Input("escalation rate must be non-negative")
	}
	return nil
}
