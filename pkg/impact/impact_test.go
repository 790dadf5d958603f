package impact

import (
	"errors"
	"math"
	"testing"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

func fixtureCompanies() []dataset.Company {
	return []dataset.Company{
		{Name: "Acme", Employees: 1000},
		{Name: "Globex", Employees: 3000},
	}
}

func TestEstimateFixture(t *testing.T) {
	r, err := Estimate(fixtureCompanies(), Assumptions{ReductionPct: 50, TimeSavedMin: 15, ValuePerHour: 500})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if r.TotalCommuters != 4000 {
		t.Errorf("TotalCommuters = %d, want 4000", r.TotalCommuters)
	}
	if r.BaselineKM != 40000 || r.AfterKM != 20000 {
		t.Errorf("km = %d -> %d, want 40000 -> 20000", r.BaselineKM, r.AfterKM)
	}
	if r.BaselineCO2Tonnes != 8 || r.AfterCO2Tonnes != 4 || r.CO2SavedTonnes != 4 {
		t.Errorf("CO2 = %v -> %v (saved %v), want 8 -> 4 (saved 4)",
			r.BaselineCO2Tonnes, r.AfterCO2Tonnes, r.CO2SavedTonnes)
	}

	// 4000 commuters * 0.25 h * 500 INR * 5 days
	if r.Weekly.Productivity != 2_500_000 {
		t.Errorf("Productivity = %d, want 2500000", r.Weekly.Productivity)
	}
	if r.Weekly.Fuel != 160_000 {
		t.Errorf("Fuel = %d, want 160000", r.Weekly.Fuel)
	}
	if r.Weekly.Other != 375_000 {
		t.Errorf("Other = %d, want 375000", r.Weekly.Other)
	}
	if r.Weekly.Total != 3_035_000 {
		t.Errorf("Total = %d, want 3035000", r.Weekly.Total)
	}
}

func TestEstimateWaterfall(t *testing.T) {
	r, err := Estimate(fixtureCompanies(), DefaultAssumptions())
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	want := []struct {
		item    string
		measure string
	}{
		{"Start", "total"},
		{"Productivity", "relative"},
		{"Fuel", "relative"},
		{"Other", "relative"},
		{"Total", "total"},
	}
	if len(r.Waterfall) != len(want) {
		t.Fatalf("waterfall has %d items, want %d", len(r.Waterfall), len(want))
	}
	for i, w := range want {
		if r.Waterfall[i].Item != w.item || r.Waterfall[i].Measure != w.measure {
			t.Errorf("waterfall[%d] = %s/%s, want %s/%s", i, r.Waterfall[i].Item, r.Waterfall[i].Measure, w.item, w.measure)
		}
	}
	if r.Waterfall[0].Value != 0 {
		t.Errorf("Start = %d, want 0", r.Waterfall[0].Value)
	}
	var sum int64
	for _, item := range r.Waterfall[1:4] {
		sum += item.Value
	}
	if sum != r.Waterfall[4].Value {
		t.Errorf("increments sum to %d, Total bar is %d", sum, r.Waterfall[4].Value)
	}
}

func TestEstimateSampleProject(t *testing.T) {
	companies, err := dataset.LoadCompanies("../../examples/hitec-city/flowsync_hitec_companies_sample.csv")
	if err != nil {
		t.Fatalf("LoadCompanies: %v", err)
	}
	r, err := Estimate(companies, DefaultAssumptions())
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if r.TotalCommuters != 114500 {
		t.Errorf("TotalCommuters = %d, want 114500", r.TotalCommuters)
	}
	if r.BaselineKM != 1_145_000 {
		t.Errorf("BaselineKM = %d, want 1145000", r.BaselineKM)
	}
	if math.Abs(r.BaselineCO2Tonnes-229) > 1e-9 {
		t.Errorf("BaselineCO2Tonnes = %v, want 229", r.BaselineCO2Tonnes)
	}
	if math.Abs(r.AfterCO2Tonnes-148.85) > 0.011 {
		t.Errorf("AfterCO2Tonnes = %v, want ~148.85", r.AfterCO2Tonnes)
	}
	if r.Weekly.Productivity != 71_562_500 {
		t.Errorf("Productivity = %d, want 71562500", r.Weekly.Productivity)
	}
}

func TestEstimateNoCompanies(t *testing.T) {
	r, err := Estimate(nil, DefaultAssumptions())
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if r.TotalCommuters != 0 || r.BaselineCO2Tonnes != 0 || r.Weekly.Total != 0 {
		t.Errorf("expected zero report, got %+v", r)
	}
}

func TestEstimateRejectsAssumptions(t *testing.T) {
	cases := []struct {
		name  string
		a     Assumptions
		param string
	}{
		{"reduction below range", Assumptions{ReductionPct: 5, TimeSavedMin: 15, ValuePerHour: 500}, "reduction_pct"},
		{"reduction above range", Assumptions{ReductionPct: 61, TimeSavedMin: 15, ValuePerHour: 500}, "reduction_pct"},
		{"time saved above range", Assumptions{ReductionPct: 35, TimeSavedMin: 90, ValuePerHour: 500}, "time_saved_min"},
		{"negative value", Assumptions{ReductionPct: 35, TimeSavedMin: 15, ValuePerHour: -1}, "value_per_hour"},
		{"NaN value", Assumptions{ReductionPct: 35, TimeSavedMin: 15, ValuePerHour: math.NaN()}, "value_per_hour"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Estimate(fixtureCompanies(), tc.a)
			var ipe *scenario.InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected InvalidParameterError, got %v", err)
			}
			if ipe.Param != tc.param {
				t.Errorf("Param = %q, want %q", ipe.Param, tc.param)
			}
			if r != nil {
				t.Error("expected nil report")
			}
		})
	}
}

func TestDailyCO2Tonnes(t *testing.T) {
	before, after := DailyCO2Tonnes(8000, 35)
	if before != 16 {
		t.Errorf("before = %v, want 16", before)
	}
	if math.Abs(after-10.4) > 1e-9 {
		t.Errorf("after = %v, want 10.4", after)
	}

	before, after = DailyCO2Tonnes(0, 35)
	if before != 0 || after != 0 {
		t.Errorf("zero employees gave %v/%v", before, after)
	}
}
