package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/project"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

const sampleProject = "../../examples/hitec-city"

func loadSampleProject(t *testing.T) *project.Project {
	t.Helper()
	p, report, err := loadAndValidate(sampleProject)
	if err != nil {
		t.Fatalf("loadAndValidate: %v", err)
	}
	if !report.Valid {
		t.Fatalf("sample project invalid: %+v", report.Errors)
	}
	return p
}

func TestScenarioParamsKeepsProjectDefaults(t *testing.T) {
	p := loadSampleProject(t)

	var f simulateFlags
	cmd := &cobra.Command{Use: "simulate"}
	f.bind(cmd)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	got, err := scenarioParams(cmd, p.Scenario, f)
	if err != nil {
		t.Fatalf("scenarioParams: %v", err)
	}
	if got != p.Scenario {
		t.Errorf("params = %+v, want project defaults %+v", got, p.Scenario)
	}
}

func TestScenarioParamsOverridesOnlySetFlags(t *testing.T) {
	p := loadSampleProject(t)

	var f simulateFlags
	cmd := &cobra.Command{Use: "simulate"}
	f.bind(cmd)
	if err := cmd.ParseFlags([]string{"--flex", "0.9", "--target", "Walk/Cycle"}); err != nil {
		t.Fatal(err)
	}

	got, err := scenarioParams(cmd, p.Scenario, f)
	if err != nil {
		t.Fatalf("scenarioParams: %v", err)
	}
	want := scenario.Parameters{
		FlexAdoptionRate: 0.9,
		IncentiveUptake:  p.Scenario.IncentiveUptake,
		TargetMode:       dataset.ModeWalkCycle,
	}
	if got != want {
		t.Errorf("params = %+v, want %+v", got, want)
	}
}

func TestScenarioParamsZeroFlagIsAnOverride(t *testing.T) {
	p := loadSampleProject(t)

	var f simulateFlags
	cmd := &cobra.Command{Use: "simulate"}
	f.bind(cmd)
	if err := cmd.ParseFlags([]string{"--uptake", "0"}); err != nil {
		t.Fatal(err)
	}

	got, err := scenarioParams(cmd, p.Scenario, f)
	if err != nil {
		t.Fatalf("scenarioParams: %v", err)
	}
	if got.IncentiveUptake != 0 || got.FlexAdoptionRate != p.Scenario.FlexAdoptionRate {
		t.Errorf("params = %+v, want uptake 0 and default flex", got)
	}
}

func TestImpactAssumptionsOverlay(t *testing.T) {
	p := loadSampleProject(t)

	var f impactFlags
	cmd := &cobra.Command{Use: "impact"}
	f.bind(cmd)
	if err := cmd.ParseFlags([]string{"--time-saved", "20"}); err != nil {
		t.Fatal(err)
	}

	a := impactAssumptions(cmd, p.Dashboard, f)
	if a.TimeSavedMin != 20 {
		t.Errorf("time saved = %v, want 20", a.TimeSavedMin)
	}
	if a.ReductionPct != p.Dashboard.ReductionPct || a.ValuePerHour != p.Dashboard.ValuePerHour {
		t.Errorf("unset flags should keep defaults, got %+v", a)
	}
}

func TestPilotTopN(t *testing.T) {
	p := loadSampleProject(t)

	cmd := pilotCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}
	top, _ := cmd.Flags().GetInt("top")
	if got := pilotTopN(cmd, p.Dashboard, top); got != p.Dashboard.TopN {
		t.Errorf("top = %d, want project default %d", got, p.Dashboard.TopN)
	}

	cmd = pilotCmd()
	if err := cmd.ParseFlags([]string{"-n", "5"}); err != nil {
		t.Fatal(err)
	}
	top, _ = cmd.Flags().GetInt("top")
	if got := pilotTopN(cmd, p.Dashboard, top); got != 5 {
		t.Errorf("top = %d, want 5", got)
	}
}
