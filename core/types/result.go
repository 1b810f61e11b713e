package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCost is the priced cost of one service for one generator
type ServiceCost struct {
	// Service is the service code
	Service ServiceCode `json:"service"`

	// Label is the human-readable service name
	Label string `json:"label"`

	// TierRange is the kW range the components were drawn from.
	// Empty for Service D, which does not depend on the tier.
	TierRange string `json:"tier_range,omitempty"`

	// Labor is the labor + mobilization dollar amount per visit
	Labor decimal.Decimal `json:"labor"`

	// Materials is the parts, fluids, fees and rental dollar amount per visit
	Materials decimal.Decimal `json:"materials"`

	// PerVisit is the total cost of one visit
	PerVisit decimal.Decimal `json:"per_visit"`

	// Frequency is the annual visit count
	Frequency int `json:"frequency"`

	// Annual is PerVisit x Frequency
	Annual decimal.Decimal `json:"annual"`
}

// UnitResult is the per-generator cost breakdown
type UnitResult struct {
	// Generator identifies the priced unit
	Generator Generator `json:"generator"`

	// TierRange is the pricing tier the unit classified into
	TierRange string `json:"tier_range"`

	// Services holds one entry per active service, canonical order
	Services []ServiceCost `json:"services"`

	// AnnualTotal is the sum of the annual service costs
	AnnualTotal decimal.Decimal `json:"annual_total"`
}

// ServiceFor returns the cost entry for a service, if present
func (u UnitResult) ServiceFor(code ServiceCode) (ServiceCost, bool) {
	for _, sc := range u.Services {
		if sc.Service == code {
			return sc, true
		}
	}
	return ServiceCost{}, false
}

// Failure records a generator that could not be priced
type Failure struct {
	// Generator identifies the failed unit
	Generator Generator `json:"generator"`

	// Reason is the error message
	Reason string `json:"reason"`

	// ErrorType is the error taxonomy category
	ErrorType string `json:"error_type"`
}

// YearTotal is one contract year's escalated total
type YearTotal struct {
	// Year is the 1-based contract year
	Year int `json:"year"`

	// Total is the escalated annual total
	Total decimal.Decimal `json:"total"`
}

// BatchResult is the complete output of one calculation.
// It is derived wholesale from the inputs and never mutated afterwards.
type BatchResult struct {
	// Units holds the successfully priced generators
	Units []UnitResult `json:"units"`

	// Failures enumerates generators that were skipped
	Failures []Failure `json:"failures,omitempty"`

	// ByService totals annual cost per service across all units
	ByService map[ServiceCode]decimal.Decimal `json:"by_service"`

	// LaborTotal is the annual labor + mobilization dollars across all units
	LaborTotal decimal.Decimal `json:"labor_total"`

	// MaterialsTotal is the annual parts/fluids/fees dollars across all units
	MaterialsTotal decimal.Decimal `json:"materials_total"`

	// GrandTotal is the annual contract total across all units
	GrandTotal decimal.Decimal `json:"grand_total"`

	// Years holds escalated option-year totals when requested
	Years []YearTotal `json:"years,omitempty"`

	// Currency is the result currency
	Currency Currency `json:"currency"`

	// CreatedAt is when the calculation ran
	CreatedAt time.Time `json:"created_at"`
}
