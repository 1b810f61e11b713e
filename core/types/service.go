package types

import (
	"strings"

	"genmaint-cost/internal/errors"
)

// ServiceCode identifies one of the five maintenance services
type ServiceCode string

const (
	// ServiceA is the comprehensive inspection
	ServiceA ServiceCode = "A"

	// ServiceB is the oil and filter service
	ServiceB ServiceCode = "B"

	// ServiceC is the coolant service
	ServiceC ServiceCode = "C"

	// ServiceD is the fluid laboratory analysis
	ServiceD ServiceCode = "D"

	// ServiceE is the load bank test
	ServiceE ServiceCode = "E"
)

// AllServices lists the closed set of service codes in canonical order
var AllServices = []ServiceCode{ServiceA, ServiceB, ServiceC, ServiceD, ServiceE}

// serviceLabels are the human-readable names used in reports and quotes
var serviceLabels = map[ServiceCode]string{
	ServiceA: "A - Comprehensive Inspection",
	ServiceB: "B - Oil & Filter Service",
	ServiceC: "C - Coolant Service",
	ServiceD: "D - Fluid Analysis",
	ServiceE: "E - Load Bank Testing",
}

// Label returns the human-readable name of the service
func (s ServiceCode) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether the code is one of the five known services
func (s ServiceCode) Valid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// ParseServiceCode normalizes and validates a service code string
func ParseServiceCode(raw string) (ServiceCode, error) {
	code := ServiceCode(strings.ToUpper(strings.TrimSpace(raw)))
	if !code.Valid() {
		return "", errors.Newf(errors.TypeInput, "unknown service code: %q", raw)
	}
	return code, nil
}

// FluidKind identifies a lab-analysis sample type for Service D
type FluidKind string

const (
	FluidOil     FluidKind = "oil"
	FluidFuel    FluidKind = "fuel"
	FluidCoolant FluidKind = "coolant"
)

// AllFluids lists the sample types in canonical order
var AllFluids = []FluidKind{FluidOil, FluidFuel, FluidCoolant}
