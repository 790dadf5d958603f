package project

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/analytics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/impact"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// Validate checks a loaded project before any dataset is read: every
// required dataset file exists and every dashboard default lies inside
// the range of its control.
func Validate(p *Project) *validation.Report {
	r := validation.NewReport()

	validateName(p, r)
	validateDatasets(p, r)
	validateDashboard(p, r)
	validateScenario(p, r)

	return r
}

func validateName(p *Project, r *validation.Report) {
	if p.Name == "" {
		r.AddWarning(validation.Result{
			Level:       validation.LevelProject,
			Message:     "project has no name",
			Field:       "name",
			Suggestions: []string{"Set name in " + FileName},
		})
	}
}

func validateDatasets(p *Project, r *validation.Report) {
	required := []struct {
		field string
		name  string
	}{
		{"datasets.commutes", p.Datasets.Commutes},
		{"datasets.traffic", p.Datasets.Traffic},
		{"datasets.companies", p.Datasets.Companies},
		{"datasets.survey", p.Datasets.Survey},
	}
	for _, d := range required {
		if d.name == "" {
			r.AddError(validation.Result{
				Level:    validation.LevelProject,
				Message:  fmt.Sprintf("%s is not set", d.field),
				Field:    d.field,
				Expected: "a CSV file name",
			})
			continue
		}
		if err := fileExists(p.Path(d.name)); err != nil {
			r.AddError(validation.Result{
				Level:       validation.LevelProject,
				Message:     fmt.Sprintf("%s: %v", d.field, err),
				Field:       d.field,
				ActualValue: p.Path(d.name),
				Expected:    "an existing CSV file",
			})
		}
	}

	// Emissions is optional.
	if p.Datasets.Emissions == "" {
		return
	}
	if err := fileExists(p.Path(p.Datasets.Emissions)); err != nil {
		r.AddInfo(validation.Result{
			Level:       validation.LevelProject,
			Message:     fmt.Sprintf("optional emissions estimates not loaded: %v", err),
			Field:       "datasets.emissions",
			ActualValue: p.Path(p.Datasets.Emissions),
		})
	}
}

func fileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file %s not found", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func validateDashboard(p *Project, r *validation.Report) {
	d := p.Dashboard

	if _, err := analytics.ParseWindow(d.TrafficWindow); err != nil {
		addParameterError(r, "dashboard.traffic_window", err)
	}
	if err := analytics.ValidateTopN(d.TopN); err != nil {
		addParameterError(r, "dashboard.top_n", err)
	}

	checks := []struct {
		field  string
		v      float64
		lo, hi float64
	}{
		{"dashboard.reduction_pct", d.ReductionPct, impact.MinReductionPct, impact.MaxReductionPct},
		{"dashboard.time_saved_min", d.TimeSavedMin, impact.MinTimeSavedMin, impact.MaxTimeSavedMin},
	}
	for _, c := range checks {
		if err := scenario.RequireRange(c.field, c.v, c.lo, c.hi); err != nil {
			addParameterError(r, c.field, err)
		}
	}

	if v := d.ValuePerHour; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelParameter,
			Message:     fmt.Sprintf("invalid dashboard.value_per_hour %v: expected >= 0", v),
			Field:       "dashboard.value_per_hour",
			ActualValue: reportable(v),
			Expected:    ">= 0",
		})
	}
}

func validateScenario(p *Project, r *validation.Report) {
	if err := p.Scenario.Validate(); err != nil {
		addParameterError(r, "scenario", err)
	}
}

func addParameterError(r *validation.Report, field string, err error) {
	res := validation.Result{
		Level:   validation.LevelParameter,
		Message: err.Error(),
		Field:   field,
	}
	var ipe *scenario.InvalidParameterError
	if errors.As(err, &ipe) {
		res.ActualValue = reportable(ipe.Value)
		res.Expected = ipe.Expected
		if field == "scenario" {
			res.Field = "scenario." + ipe.Param
		}
	}
	r.AddError(res)
}

// reportable keeps non-finite floats out of JSON-encoded reports.
func reportable(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return fmt.Sprint(f)
	}
	return v
}
