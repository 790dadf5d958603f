package analytics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// Overview holds the headline KPI tiles of the dashboard.
type Overview struct {
	PeakEveningVehicles int     `json:"peak_evening_vehicles_per_hour"`
	AvgCommuteMin10KM   float64 `json:"avg_commute_min_for_10km"`
	Companies           int     `json:"companies"`
	Responses           int     `json:"responses"`
	WillingPct          float64 `json:"willing_pct"`
}

// Resolve computes the overview KPIs from the supporting tables.
// Returns the overview and a report of analytical warnings.
func Resolve(traffic []dataset.TrafficSample, companies []dataset.Company, survey []dataset.SurveyResponse) (*Overview, *validation.Report) {
	report := validation.NewReport()

	ov := &Overview{
		Companies: len(companies),
		Responses: len(survey),
	}

	// 1. Peak evening volume
	evening := TrafficWindow(traffic, WindowEvening)
	if len(evening) > 0 {
		vehicles := make([]float64, len(evening))
		for i, s := range evening {
			vehicles[i] = s.VehiclesPerHour
		}
		ov.PeakEveningVehicles = int(floats.Max(vehicles))
	}

	// 2. Average commute time
	if len(traffic) > 0 {
		times := make([]float64, len(traffic))
		for i, s := range traffic {
			times[i] = s.CommuteTimeMin10KM
		}
		ov.AvgCommuteMin10KM = round1(stat.Mean(times, nil))
	}

	// 3. Willingness
	if len(survey) > 0 {
		willing := 0
		for _, r := range survey {
			if r.Willing() {
				willing++
			}
		}
		ov.WillingPct = round1(100 * float64(willing) / float64(len(survey)))
	}

	validateOverview(traffic, evening, companies, survey, report)

	return ov, report
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
