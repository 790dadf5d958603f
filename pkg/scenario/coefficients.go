package scenario

import "github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"

// Coefficient converts commute distance into emission and road load.
type Coefficient struct {
	EmissionKGPerKM float64 `json:"emission_kg_per_km"` // kg CO2 per passenger-km
	CongestionPerKM float64 `json:"congestion_per_km"`  // car-equivalent road units per km
}

// Per-mode coefficients. Car is the congestion reference (1.0 per km).
var coefficients = map[dataset.Mode]Coefficient{
	dataset.ModeCar:       {EmissionKGPerKM: 0.20, CongestionPerKM: 1.00},
	dataset.ModeBus:       {EmissionKGPerKM: 0.08, CongestionPerKM: 0.30},
	dataset.ModeShuttle:   {EmissionKGPerKM: 0.05, CongestionPerKM: 0.20},
	dataset.ModeWalkCycle: {EmissionKGPerKM: 0.00, CongestionPerKM: 0.05},
	dataset.ModeWFH:       {EmissionKGPerKM: 0.00, CongestionPerKM: 0.00},
}

// Coefficients returns a copy of the coefficient table.
func Coefficients() map[dataset.Mode]Coefficient {
	out := make(map[dataset.Mode]Coefficient, len(coefficients))
	for m, c := range coefficients {
		out[m] = c
	}
	return out
}

// CoefficientFor returns the coefficients of one mode.
func CoefficientFor(m dataset.Mode) (Coefficient, bool) {
	c, ok := coefficients[m]
	return c, ok
}
