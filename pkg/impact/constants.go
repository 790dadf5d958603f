package impact

// Illustrative unit values for the what-if estimate.
const (
	CommuteDistanceKM  = 10.0 // assumed daily commute per employee
	EmissionKGPerKM    = 0.2  // kg CO2 per car-km
	FuelCostPerKM      = 8.0  // INR saved per avoided km
	OtherBenefitShare  = 0.15 // other benefits as a share of productivity
	WorkingDaysPerWeek = 5.0
	KGPerTonne         = 1000.0
	MinutesPerHour     = 60.0
)

// Bounds of the dashboard assumption controls.
const (
	MinReductionPct = 10.0
	MaxReductionPct = 60.0
	MinTimeSavedMin = 5.0
	MaxTimeSavedMin = 60.0
)
