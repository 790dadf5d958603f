package scenario

import (
	"fmt"
	"math"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
)

// Parameters are the what-if inputs for one recomputation.
type Parameters struct {
	FlexAdoptionRate float64      `json:"flex_adoption_rate" yaml:"flex_adoption_rate"`
	IncentiveUptake  float64      `json:"incentive_uptake" yaml:"incentive_uptake"`
	TargetMode       dataset.Mode `json:"target_mode" yaml:"target_mode"`
}

// InvalidParameterError reports a scenario input outside its allowed domain.
type InvalidParameterError struct {
	Param    string
	Value    any
	Expected string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: expected %s", e.Param, e.Value, e.Expected)
}

// Validate checks both rates and the target mode.
func (p Parameters) Validate() error {
	if err := RequireRange("flex_adoption_rate", p.FlexAdoptionRate, 0, 1); err != nil {
		return err
	}
	if err := RequireRange("incentive_uptake", p.IncentiveUptake, 0, 1); err != nil {
		return err
	}
	if !p.TargetMode.Valid() {
		return &InvalidParameterError{
			Param:    "target_mode",
			Value:    fmt.Sprintf("%q", p.TargetMode),
			Expected: "one of car, bus, shuttle, walk_cycle, wfh",
		}
	}
	return nil
}

// ShiftFraction is the share of eligible commuters assumed to change mode.
func (p Parameters) ShiftFraction() float64 {
	return p.FlexAdoptionRate * p.IncentiveUptake
}

// RequireRange returns an InvalidParameterError unless lo <= v <= hi.
// NaN is always rejected.
func RequireRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &InvalidParameterError{
			Param:    name,
			Value:    v,
			Expected: fmt.Sprintf("%g <= value <= %g", lo, hi),
		}
	}
	return nil
}
