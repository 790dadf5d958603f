package project

import "github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"

// Project is the top-level configuration of one FlowSync deployment.
type Project struct {
	Name      string              `yaml:"name" json:"name"`
	Datasets  Datasets            `yaml:"datasets" json:"datasets"`
	Dashboard Dashboard           `yaml:"dashboard" json:"dashboard"`
	Scenario  scenario.Parameters `yaml:"scenario" json:"scenario"`

	// Dir is the directory the project file was read from. Dataset paths
	// resolve against it.
	Dir string `yaml:"-" json:"-"`
}

// Datasets names the CSV file of each table, relative to the project directory.
// Emissions is optional.
type Datasets struct {
	Commutes  string `yaml:"commutes" json:"commutes"`
	Traffic   string `yaml:"traffic" json:"traffic"`
	Companies string `yaml:"companies" json:"companies"`
	Survey    string `yaml:"survey" json:"survey"`
	Emissions string `yaml:"emissions" json:"emissions"`
}

// Dashboard holds the starting values of the dashboard controls.
type Dashboard struct {
	TrafficWindow string  `yaml:"traffic_window" json:"traffic_window"`
	TopN          int     `yaml:"top_n" json:"top_n"`
	ReductionPct  float64 `yaml:"reduction_pct" json:"reduction_pct"`
	TimeSavedMin  float64 `yaml:"time_saved_min" json:"time_saved_min"`
	ValuePerHour  float64 `yaml:"value_per_hour" json:"value_per_hour"`
}
