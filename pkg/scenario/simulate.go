package scenario

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
)

// KPISummary is the derived scenario outcome for one table and parameter set.
type KPISummary struct {
	Records          int                  `json:"records"`
	Eligible         int                  `json:"eligible"`
	Shifted          int                  `json:"shifted"`
	CongestionIndex  float64              `json:"congestion_index"`
	CongestionLoad   float64              `json:"congestion_load"`
	TotalEmissionsKG float64              `json:"total_emissions_kg"`
	MeanSentiment    float64              `json:"mean_sentiment"`
	ModeShare        map[dataset.Mode]int `json:"mode_share"`
	Companies        []CompanyKPI         `json:"companies"`
}

// CompanyKPI is the per-company slice of a KPISummary.
type CompanyKPI struct {
	CompanyID       string  `json:"company_id"`
	Records         int     `json:"records"`
	Eligible        int     `json:"eligible"`
	Shifted         int     `json:"shifted"`
	CongestionIndex float64 `json:"congestion_index"`
	CongestionLoad  float64 `json:"congestion_load"`
	EmissionsKG     float64 `json:"emissions_kg"`
	MeanSentiment   float64 `json:"mean_sentiment"`
}

// Metrics flattens the headline KPIs into name/value pairs for rendering.
func (s KPISummary) Metrics() map[string]float64 {
	return map[string]float64{
		"records":            float64(s.Records),
		"eligible":           float64(s.Eligible),
		"shifted":            float64(s.Shifted),
		"congestion_index":   s.CongestionIndex,
		"congestion_load":    s.CongestionLoad,
		"total_emissions_kg": s.TotalEmissionsKG,
		"mean_sentiment":     s.MeanSentiment,
	}
}

// Simulate recomputes the KPIs assuming a share of flex-eligible commuters
// switch to params.TargetMode. The table is only read.
//
// Per company, round(flex_adoption_rate * incentive_uptake * eligible) of the
// eligible records, taken in row order, are moved to the target mode. A moved
// record contributes distance times the target coefficients; an unmoved record
// contributes its baseline emission and distance times its own congestion
// coefficient. Sentiment is not modeled as responding to the scenario.
func Simulate(table *dataset.CommuteTable, params Parameters) (KPISummary, error) {
	if err := params.Validate(); err != nil {
		return KPISummary{}, err
	}
	return aggregate(table, params.TargetMode, params.ShiftFraction()), nil
}

// Baseline returns the KPIs of the table as surveyed, with nobody shifted.
func Baseline(table *dataset.CommuteTable) KPISummary {
	return aggregate(table, "", 0)
}

func aggregate(table *dataset.CommuteTable, target dataset.Mode, fraction float64) KPISummary {
	summary := KPISummary{
		ModeShare: make(map[dataset.Mode]int, len(dataset.Modes)),
		Companies: []CompanyKPI{},
	}
	for _, m := range dataset.Modes {
		summary.ModeShare[m] = 0
	}

	groups := partition(table)
	ids := table.CompanyIDs()
	sentiments := make([]float64, 0, table.Len())
	var totalDistance float64

	for _, id := range ids {
		rows := groups[id]
		ck := CompanyKPI{CompanyID: id, Records: len(rows)}
		for _, i := range rows {
			if table.At(i).FlexEligible {
				ck.Eligible++
			}
		}
		ck.Shifted = shiftCount(fraction, ck.Eligible)

		var distance float64
		companySentiments := make([]float64, 0, len(rows))
		moved := 0
		for _, i := range rows {
			rec := table.At(i)
			mode := rec.Mode
			emission := rec.EmissionKG
			if rec.FlexEligible && moved < ck.Shifted {
				mode = target
				emission = rec.DistanceKM * coefficients[target].EmissionKGPerKM
				moved++
			}
			ck.EmissionsKG += emission
			ck.CongestionLoad += rec.DistanceKM * coefficients[mode].CongestionPerKM
			distance += rec.DistanceKM
			summary.ModeShare[mode]++
			companySentiments = append(companySentiments, rec.Sentiment)
		}
		ck.CongestionIndex = congestionIndex(ck.CongestionLoad, distance)
		ck.MeanSentiment = mean(companySentiments)

		summary.Records += ck.Records
		summary.Eligible += ck.Eligible
		summary.Shifted += ck.Shifted
		summary.CongestionLoad += ck.CongestionLoad
		summary.TotalEmissionsKG += ck.EmissionsKG
		totalDistance += distance
		sentiments = append(sentiments, companySentiments...)
		summary.Companies = append(summary.Companies, ck)
	}

	summary.CongestionIndex = congestionIndex(summary.CongestionLoad, totalDistance)
	summary.MeanSentiment = mean(sentiments)
	return summary
}

// partition groups row positions by company, preserving row order within a group.
func partition(table *dataset.CommuteTable) map[string][]int {
	groups := make(map[string][]int)
	for i := 0; i < table.Len(); i++ {
		id := table.At(i).CompanyID
		groups[id] = append(groups[id], i)
	}
	return groups
}

func shiftCount(fraction float64, eligible int) int {
	n := int(math.Round(fraction * float64(eligible)))
	if n > eligible {
		return eligible
	}
	if n < 0 {
		return 0
	}
	return n
}

// congestionIndex scales road load to 0-100, where 100 means every
// kilometre was driven by car.
func congestionIndex(load, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return 100 * load / (distance * coefficients[dataset.ModeCar].CongestionPerKM)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}
