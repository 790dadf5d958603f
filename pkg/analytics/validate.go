package analytics

import (
	"fmt"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// validateOverview flags inputs that leave a KPI tile at zero.
func validateOverview(traffic, evening []dataset.TrafficSample, companies []dataset.Company, survey []dataset.SurveyResponse, report *validation.Report) {
	if len(traffic) == 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     "traffic time series is empty; commute and volume KPIs are zero",
			Field:       "traffic",
			Suggestions: []string{"Provide hourly samples covering the day"},
		})
	} else if len(evening) == 0 {
		from, to := WindowEvening.Bounds()
		report.AddWarning(validation.Result{
			Level:    validation.LevelAnalytical,
			Message:  "no traffic samples fall in the evening peak window",
			Field:    "traffic.time",
			Expected: fmt.Sprintf("at least one sample in [%s, %s)", clock(from), clock(to)),
		})
	}

	if len(companies) == 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: "company sample is empty",
			Field:   "companies",
		})
	}

	if len(survey) == 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: "survey has no responses; willingness is reported as 0%",
			Field:   "survey",
		})
		return
	}

	answered := 0
	for _, r := range survey {
		if label(r.WillingToShift) != "" {
			answered++
		}
	}
	if answered < len(survey) {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("%d of %d responses leave willing_to_shift blank and count as not willing", len(survey)-answered, len(survey)),
			Field:       "survey.willing_to_shift",
			ActualValue: len(survey) - answered,
		})
	}
}

func clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
