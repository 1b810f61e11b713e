package pricing

import (
	"encoding/json"
	"os"

	"genmaint-cost/core/types"
	"genmaint-cost/internal/errors"
)

// Components are the per-tier fixed cost inputs for one service visit.
// Each service reads the subset of fields it needs; unused fields stay zero.
type Components struct {
	// Labor is the on-site labor time in hours
	Labor float64 `json:"labor"`

	// Mobilization is the travel/setup time in hours
	Mobilization float64 `json:"mobilization"`

	// Parts is the inspection parts and supplies cost (Service A)
	Parts float64 `json:"parts,omitempty"`

	// FilterCost is the oil filter replacement cost (Service B)
	FilterCost float64 `json:"filterCost,omitempty"`

	// OilGallons is the engine oil volume (Service B)
	OilGallons float64 `json:"oilGallons,omitempty"`

	// CoolantGallons is the coolant volume (Service C)
	CoolantGallons float64 `json:"coolantGallons,omitempty"`

	// HoseBeltCost is the hose and belt replacement cost (Service C)
	HoseBeltCost float64 `json:"hoseBeltCost,omitempty"`

	// LoadBankRental is the load bank rental cost (Service E)
	LoadBankRental float64 `json:"loadBankRental,omitempty"`

	// TransformerRental is the transformer rental cost for voltage
	// matching on large units (Service E)
	TransformerRental float64 `json:"transformerRental,omitempty"`

	// DeliveryCost is the equipment delivery cost (Service E)
	DeliveryCost float64 `json:"deliveryCost,omitempty"`
}

// ServiceTable is one service's tier-indexed component table
type ServiceTable struct {
	// Frequency is the default annual visit count for the service
	Frequency int `json:"frequency,omitempty"`

	// Data maps tier labels to cost components
	Data map[string]Components `json:"data"`
}

// AnalysisFees are the flat per-sample laboratory fees for Service D
type AnalysisFees struct {
	Oil     float64 `json:"oilAnalysisCost"`
	Coolant float64 `json:"coolantAnalysisCost"`
	Fuel    float64 `json:"fuelAnalysisCost"`
}

// Fee returns the laboratory fee for a fluid sample type
func (f AnalysisFees) Fee(kind types.FluidKind) (float64, error) {
	switch kind {
	case types.FluidOil:
		return f.Oil, nil
	case types.FluidFuel:
		return f.Fuel, nil
	case types.FluidCoolant:
		return f.Coolant, nil
	default:
		return 0, errors.Newf(errors.TypeInput, "unknown fluid kind: %q", kind)
	}
}

// Book is the complete pricing configuration document.
// The JSON layout matches the calculator settings document: rate scalars at
// the top level, one table per service.
type Book struct {
	RateSettings

	ServiceA ServiceTable `json:"serviceA"`
	ServiceB ServiceTable `json:"serviceB"`
	ServiceC ServiceTable `json:"serviceC"`
	ServiceD AnalysisFees `json:"serviceD"`
	ServiceE ServiceTable `json:"serviceE"`
}

// Table returns the tier table for a tiered service.
// Service D has no table; asking for it is a caller bug.
func (b *Book) Table(code types.ServiceCode) (*ServiceTable, error) {
	switch code {
	case types.ServiceA:
		return &b.ServiceA, nil
	case types.ServiceB:
		return &b.ServiceB, nil
	case types.ServiceC:
		return &b.ServiceC, nil
	case types.ServiceE:
		return &b.ServiceE, nil
	default:
		return nil, errors.Newf(errors.TypeInternal, "service %s has no tier table", code)
	}
}

// ComponentsFor looks up the cost components for a service and tier label
func (b *Book) ComponentsFor(code types.ServiceCode, tierLabel string) (Components, error) {
	table, err := b.Table(code)
	if err != nil {
		return Components{}, err
	}
	comps, ok := table.Data[tierLabel]
	if !ok {
		return Components{}, errors.Config(
			"service"+string(code)+".data."+tierLabel,
			"tier missing from pricing book")
	}
	return comps, nil
}

// DefaultFrequencies returns the book's default annual visit counts
func (b *Book) DefaultFrequencies() map[types.ServiceCode]int {
	return map[types.ServiceCode]int{
		types.ServiceA: b.ServiceA.Frequency,
		types.ServiceB: b.ServiceB.Frequency,
		types.ServiceC: b.ServiceC.Frequency,
		types.ServiceD: 1,
		types.ServiceE: b.ServiceE.Frequency,
	}
}

// Load reads and validates a pricing book from a JSON document.
// An empty path returns the built-in defaults.
func Load(path string) (*Book, error) {
	if path == "" {
		return DefaultBook(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "reading pricing book", err)
	}

	var book Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parsing pricing book", err)
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}
	return &book, nil
}
