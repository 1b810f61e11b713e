package types

// Generator is a single generator unit to be priced.
// Only the kW rating affects pricing; the remaining fields identify the
// unit in reports and quote payloads.
type Generator struct {
	// ID is the site asset identifier (e.g. "02 EG 068")
	ID string `json:"assetId"`

	// KW is the nameplate power rating in kilowatts
	KW float64 `json:"kw"`

	// Manufacturer is informational only
	Manufacturer string `json:"manufacturer,omitempty"`

	// Building locates the unit on site, informational only
	Building string `json:"building,omitempty"`
}

// ServiceSelection declares which services are active and how often each
// is performed per contract year.
type ServiceSelection struct {
	// Frequencies maps active service codes to annual visit counts.
	// A service absent from the map is not performed.
	Frequencies map[ServiceCode]int `json:"frequencies"`

	// Fluids selects the sample types for Service D. Ignored unless
	// Service D is active.
	Fluids []FluidKind `json:"fluids,omitempty"`
}

// NewServiceSelection builds a selection with every listed service at the
// given annual frequency
func NewServiceSelection(frequency int, codes ...ServiceCode) ServiceSelection {
	freqs := make(map[ServiceCode]int, len(codes))
	for _, code := range codes {
		freqs[code] = frequency
	}
	return ServiceSelection{Frequencies: freqs}
}

// Services returns the active service codes in canonical order
func (s ServiceSelection) Services() []ServiceCode {
	var active []ServiceCode
	for _, code := range AllServices {
		if freq, ok := s.Frequencies[code]; ok && freq > 0 {
			active = append(active, code)
		}
	}
	return active
}

// Frequency returns the annual visit count for a service (0 if inactive)
func (s ServiceSelection) Frequency(code ServiceCode) int {
	return s.Frequencies[code]
}
