package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// FileName is the project file looked up by LoadProject.
const FileName = "flowsync.yaml"

// Default returns a project with the stock dataset file names and dashboard
// control values.
func Default() *Project {
	return &Project{
		Name: "FlowSync",
		Datasets: Datasets{
			Commutes:  "flowsync_commute_records.csv",
			Traffic:   "flowsync_hitec_traffic_timeseries.csv",
			Companies: "flowsync_hitec_companies_sample.csv",
			Survey:    "flowsync_commuter_survey.csv",
			Emissions: "flowsync_emissions_econ_estimates.csv",
		},
		Dashboard: Dashboard{
			TrafficWindow: "evening",
			TopN:          12,
			ReductionPct:  35,
			TimeSavedMin:  15,
			ValuePerHour:  500,
		},
		Scenario: scenario.Parameters{TargetMode: dataset.ModeShuttle},
	}
}

// Load reads a project from a YAML file. Keys absent from the file keep
// their Default values.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	p.Dir = filepath.Dir(path)

	return p, nil
}

// LoadProject loads a project from a project directory.
// It looks for flowsync.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, FileName))
}

// Path resolves a dataset file name against the project directory.
// Absolute names are returned unchanged and empty names stay empty.
func (p *Project) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.Dir, name)
}
