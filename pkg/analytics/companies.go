package analytics

import (
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/impact"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// Bounds of the top-N company selector.
const (
	MinTopN = 5
	MaxTopN = 25
)

// CompanyProfile is one employer with its estimated daily commute emissions.
type CompanyProfile struct {
	Name              string  `json:"company_name"`
	Employees         int     `json:"employees"`
	BaselineCO2Tonnes float64 `json:"baseline_co2_tonnes"`
	AfterCO2Tonnes    float64 `json:"after_co2_tonnes"`
}

// ValidateTopN rejects a selector value outside [MinTopN, MaxTopN].
func ValidateTopN(n int) error {
	return scenario.RequireRange("top_n", float64(n), MinTopN, MaxTopN)
}

// TopCompanies returns the n largest employers, ties kept in input order,
// each with daily CO2 before and after a reductionPct km reduction.
func TopCompanies(companies []dataset.Company, n int, reductionPct float64) ([]CompanyProfile, error) {
	if err := ValidateTopN(n); err != nil {
		return nil, err
	}
	if err := scenario.RequireRange("reduction_pct", reductionPct, impact.MinReductionPct, impact.MaxReductionPct); err != nil {
		return nil, err
	}

	top := dataset.RankCompanies(companies, n)
	profiles := make([]CompanyProfile, len(top))
	for i, c := range top {
		before, after := impact.DailyCO2Tonnes(c.Employees, reductionPct)
		profiles[i] = CompanyProfile{
			Name:              c.Name,
			Employees:         c.Employees,
			BaselineCO2Tonnes: before,
			AfterCO2Tonnes:    after,
		}
	}
	return profiles, nil
}
