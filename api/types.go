// Package api - request/response types and mapping
package api

import (
	"genmaint-cost/core/engine"
	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// CalculateRequest is the POST /calculate body.
// Field names match the calculator's wire format.
type CalculateRequest struct {
	// Services lists the active service codes
	Services []string `json:"services"`

	// Generators is the fleet to price
	Generators []types.Generator `json:"generators"`

	// ServiceFrequencies overrides annual visit counts per code.
	// Codes listed in Services but absent here default from the book.
	ServiceFrequencies map[string]int `json:"serviceFrequencies,omitempty"`

	// ServiceDFluids selects sample types when Service D is active
	ServiceDFluids map[string]bool `json:"serviceDFluids,omitempty"`

	// ContractYears is the contract length including the base year
	ContractYears int `json:"contractYears,omitempty"`

	// EscalationRate is the annual option-year escalation
	EscalationRate float64 `json:"escalationRate,omitempty"`
}

// ToEngineRequest validates and converts the wire request
func (r *CalculateRequest) ToEngineRequest(defaults map[types.ServiceCode]int) (engine.Request, error) {
	if len(r.Services) == 0 {
		return engine.Request{}, errors.Input("services is required")
	}
	if len(r.Generators) == 0 {
		return engine.Request{}, errors.Input("generators is required")
	}

	selection := types.ServiceSelection{
		Frequencies: make(map[types.ServiceCode]int, len(r.Services)),
	}
	for _, raw := range r.Services {
		code, err := types.ParseServiceCode(raw)
		if err != nil {
			return engine.Request{}, err
		}
		freq, ok := r.ServiceFrequencies[string(code)]
		if !ok {
			freq = defaults[code]
		}
		if freq <= 0 {
			freq = 1
		}
		selection.Frequencies[code] = freq
	}

	for _, kind := range types.AllFluids {
		if r.ServiceDFluids[string(kind)] {
			selection.Fluids = append(selection.Fluids, kind)
		}
	}

	return engine.Request{
		Generators:     r.Generators,
		Selection:      selection,
		ContractYears:  r.ContractYears,
		EscalationRate: r.EscalationRate,
	}, nil
}

// ServiceTotal is a per-service rollup in the response breakdown
type ServiceTotal struct {
	TotalCost string `json:"totalCost"`
	Frequency int    `json:"frequency"`
}

// Calculation is the response body of a successful calculation
type Calculation struct {
	// Subtotal is the annual grand total
	Subtotal string `json:"subtotal"`

	// ServiceBreakdown totals annual cost per service, keyed by label
	ServiceBreakdown map[string]ServiceTotal `json:"serviceBreakdown"`

	// Units is the per-generator breakdown
	Units []types.UnitResult `json:"units"`

	// Failures lists skipped generators
	Failures []types.Failure `json:"failures,omitempty"`

	// Years is the escalated contract schedule, when requested
	Years []types.YearTotal `json:"years,omitempty"`

	// Currency is the result currency
	Currency string `json:"currency"`
}

// CalculateResponse wraps the calculation in the wire envelope
type CalculateResponse struct {
	Calculation Calculation `json:"calculation"`
}

// NewCalculateResponse maps an engine result to the wire format
func NewCalculateResponse(result *types.BatchResult, selection types.ServiceSelection) CalculateResponse {
	breakdown := make(map[string]ServiceTotal, len(result.ByService))
	for code, total := range result.ByService {
		breakdown[code.Label()] = ServiceTotal{
			TotalCost: total.StringFixed(2),
			Frequency: selection.Frequency(code),
		}
	}

	return CalculateResponse{
		Calculation: Calculation{
			Subtotal:         result.GrandTotal.StringFixed(2),
			ServiceBreakdown: breakdown,
			Units:            result.Units,
			Failures:         result.Failures,
			Years:            result.Years,
			Currency:         result.Currency.String(),
		},
	}
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
