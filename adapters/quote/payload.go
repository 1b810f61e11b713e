package quote

import (
	"genmaint-cost/core/types"
)

// Customer identifies the bid customer on a quote
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// ServiceLine is one priced service on a quote
type ServiceLine struct {
	Service   string `json:"service"`
	Label     string `json:"label"`
	Frequency int    `json:"frequency"`
	PerVisit  string `json:"perVisit"`
	Annual    string `json:"annual"`
}

// QuoteData is the per-unit quote body
type QuoteData struct {
	Customer    Customer          `json:"customerInfo"`
	Generators  []types.Generator `json:"generators"`
	Services    []ServiceLine     `json:"services"`
	AnnualTotal string            `json:"annualTotal"`
	RFPNumber   string            `json:"rfpNumber,omitempty"`
}

// Payload is the CPQ request envelope: one quote per generator unit
type Payload struct {
	QuoteData QuoteData `json:"quoteData"`
}

func (p Payload) unitID() string {
	if len(p.QuoteData.Generators) > 0 {
		return p.QuoteData.Generators[0].ID
	}
	return "unknown"
}

// Submission records an accepted quote
type Submission struct {
	Unit    string `json:"unit"`
	QuoteID string `json:"zoho_quote_id"`
}

// SubmissionFailure records a rejected or failed quote
type SubmissionFailure struct {
	Unit  string `json:"unit"`
	Error string `json:"error"`
}

// Report is the outcome of a batch submission run
type Report struct {
	Successful []Submission        `json:"successful"`
	Failed     []SubmissionFailure `json:"failed"`
	Total      int                 `json:"total"`
}

// FailedUnits lists the units to resubmit in a retry pass
func (r *Report) FailedUnits() []string {
	units := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		units = append(units, f.Unit)
	}
	return units
}

// PayloadsFromResult builds one quote payload per priced generator
func PayloadsFromResult(result *types.BatchResult, customer Customer, rfpNumber string) []Payload {
	payloads := make([]Payload, 0, len(result.Units))
	for _, unit := range result.Units {
		lines := make([]ServiceLine, 0, len(unit.Services))
		for _, sc := range unit.Services {
			lines = append(lines, ServiceLine{
				Service:   string(sc.Service),
				Label:     sc.Label,
				Frequency: sc.Frequency,
				PerVisit:  sc.PerVisit.StringFixed(2),
				Annual:    sc.Annual.StringFixed(2),
			})
		}

		payloads = append(payloads, Payload{
			QuoteData: QuoteData{
				Customer:    customer,
				Generators:  []types.Generator{unit.Generator},
				Services:    lines,
				AnnualTotal: unit.AnnualTotal.StringFixed(2),
				RFPNumber:   rfpNumber,
			},
		})
	}
	return payloads
}

// PayloadsForUnits filters payloads to the named units (retry pass)
func PayloadsForUnits(payloads []Payload, units []string) []Payload {
	wanted := make(map[string]bool, len(units))
	for _, unit := range units {
		wanted[unit] = true
	}

	var filtered []Payload
	for _, payload := range payloads {
		if wanted[payload.unitID()] {
			filtered = append(filtered, payload)
		}
	}
	return filtered
}
