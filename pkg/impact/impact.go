package impact

import (
	"math"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// Assumptions are the what-if inputs of the ROI estimate.
type Assumptions struct {
	ReductionPct float64 `json:"reduction_pct"`  // total km reduction, percent
	TimeSavedMin float64 `json:"time_saved_min"` // per commuter per day
	ValuePerHour float64 `json:"value_per_hour"` // INR per productive hour
}

// DefaultAssumptions matches the dashboard's starting control values.
func DefaultAssumptions() Assumptions {
	return Assumptions{ReductionPct: 35, TimeSavedMin: 15, ValuePerHour: 500}
}

// Validate rejects assumptions outside the dashboard control ranges.
func (a Assumptions) Validate() error {
	if err := scenario.RequireRange("reduction_pct", a.ReductionPct, MinReductionPct, MaxReductionPct); err != nil {
		return err
	}
	if err := scenario.RequireRange("time_saved_min", a.TimeSavedMin, MinTimeSavedMin, MaxTimeSavedMin); err != nil {
		return err
	}
	if math.IsNaN(a.ValuePerHour) || math.IsInf(a.ValuePerHour, 0) || a.ValuePerHour < 0 {
		return &scenario.InvalidParameterError{Param: "value_per_hour", Value: a.ValuePerHour, Expected: ">= 0"}
	}
	return nil
}

// Weekly itemizes the weekly economic benefit in INR.
type Weekly struct {
	Productivity int64 `json:"productivity"`
	Fuel         int64 `json:"fuel"`
	Other        int64 `json:"other"`
	Total        int64 `json:"total"`
}

// WaterfallItem is one bar of the ROI waterfall. Measure is "total" for the
// anchoring bars and "relative" for increments.
type WaterfallItem struct {
	Item    string `json:"item"`
	Value   int64  `json:"value"`
	Measure string `json:"measure"`
}

// Report is the complete emissions and ROI output.
type Report struct {
	Assumptions       Assumptions     `json:"assumptions"`
	TotalCommuters    int             `json:"total_commuters"`
	BaselineKM        int             `json:"baseline_km"`
	AfterKM           int             `json:"after_km"`
	BaselineCO2Tonnes float64         `json:"baseline_co2_tonnes"`
	AfterCO2Tonnes    float64         `json:"after_co2_tonnes"`
	CO2SavedTonnes    float64         `json:"co2_saved_tonnes"`
	Weekly            Weekly          `json:"weekly"`
	Waterfall         []WaterfallItem `json:"waterfall"`
}

// Estimate computes daily emissions before and after the assumed km
// reduction and the weekly value of time and fuel saved.
func Estimate(companies []dataset.Company, a Assumptions) (*Report, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range companies {
		total += c.Employees
	}

	baselineKM := int(float64(total) * CommuteDistanceKM)
	afterKM := int(float64(baselineKM) * (1 - a.ReductionPct/100))

	report := &Report{
		Assumptions:       a,
		TotalCommuters:    total,
		BaselineKM:        baselineKM,
		AfterKM:           afterKM,
		BaselineCO2Tonnes: round2(float64(baselineKM) * EmissionKGPerKM / KGPerTonne),
		AfterCO2Tonnes:    round2(float64(afterKM) * EmissionKGPerKM / KGPerTonne),
	}
	report.CO2SavedTonnes = round2(report.BaselineCO2Tonnes - report.AfterCO2Tonnes)

	prod := int64(float64(total) * (a.TimeSavedMin / MinutesPerHour) * a.ValuePerHour * WorkingDaysPerWeek)
	fuel := int64(float64(baselineKM-afterKM) * FuelCostPerKM)
	other := int64(float64(prod) * OtherBenefitShare)
	report.Weekly = Weekly{
		Productivity: prod,
		Fuel:         fuel,
		Other:        other,
		Total:        prod + fuel + other,
	}
	report.Waterfall = []WaterfallItem{
		{Item: "Start", Value: 0, Measure: "total"},
		{Item: "Productivity", Value: prod, Measure: "relative"},
		{Item: "Fuel", Value: fuel, Measure: "relative"},
		{Item: "Other", Value: other, Measure: "relative"},
		{Item: "Total", Value: report.Weekly.Total, Measure: "total"},
	}

	return report, nil
}

// DailyCO2Tonnes returns one company's daily commute emissions before and
// after a reduction of reductionPct percent of its km, rounded to 2 decimals.
func DailyCO2Tonnes(employees int, reductionPct float64) (before, after float64) {
	kg := float64(employees) * CommuteDistanceKM * EmissionKGPerKM
	return round2(kg / KGPerTonne), round2(kg * (1 - reductionPct/100) / KGPerTonne)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
