package dataset

import (
	"fmt"
	"strings"
)

// Mode is the commute mode of a surveyed commuter.
type Mode string

const (
	ModeCar       Mode = "car"
	ModeBus       Mode = "bus"
	ModeShuttle   Mode = "shuttle"
	ModeWalkCycle Mode = "walk_cycle"
	ModeWFH       Mode = "wfh"
)

// Modes lists every recognized mode in display order.
var Modes = []Mode{ModeCar, ModeBus, ModeShuttle, ModeWalkCycle, ModeWFH}

var modeAliases = map[string]Mode{
	"car":            ModeCar,
	"bus":            ModeBus,
	"shuttle":        ModeShuttle,
	"walk_cycle":     ModeWalkCycle,
	"walk/cycle":     ModeWalkCycle,
	"walk-cycle":     ModeWalkCycle,
	"wfh":            ModeWFH,
	"work_from_home": ModeWFH,
	"work-from-home": ModeWFH,
}

// ParseMode normalizes a raw mode label. Matching is case-insensitive.
func ParseMode(raw string) (Mode, error) {
	m, ok := modeAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unknown commute mode %q", raw)
	}
	return m, nil
}

// UnmarshalText normalizes a mode decoded from JSON or YAML with the same
// vocabulary as ParseMode. Unrecognized labels are kept verbatim so parameter
// validation can report them against the field they came from.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		*m = Mode(text)
		return nil
	}
	*m = parsed
	return nil
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// Sentiment bounds, inclusive.
const (
	MinSentiment = 1.0
	MaxSentiment = 5.0
)

// CommuteRecord is one surveyed commuter.
type CommuteRecord struct {
	CompanyID    string  `json:"company_id"`
	Mode         Mode    `json:"mode"`
	DistanceKM   float64 `json:"distance_km"`
	EmissionKG   float64 `json:"emission_kg"`
	Sentiment    float64 `json:"sentiment"`
	FlexEligible bool    `json:"flex_eligible"`
}

// TrafficSample is one row of the corridor traffic time series.
type TrafficSample struct {
	Time               string  `json:"time"`
	Hour               int     `json:"hour"`
	Minute             int     `json:"minute"`
	VehiclesPerHour    float64 `json:"vehicles_per_hour"`
	CommuteTimeMin10KM float64 `json:"commute_time_min_for_10km"`
	CongestionIndex    float64 `json:"congestion_index_0_100"`
}

// MinuteOfDay returns the sample time as minutes after midnight.
func (s TrafficSample) MinuteOfDay() int {
	return s.Hour*60 + s.Minute
}

// Company is one employer in the corridor sample.
type Company struct {
	Name      string `json:"company_name"`
	Employees int    `json:"estimated_employees_in_hyderabad"`
	Sector    string `json:"sector,omitempty"`
}

// SurveyResponse is one commuter survey answer.
type SurveyResponse struct {
	RespondentID        string `json:"respondent_id,omitempty"`
	CompanyName         string `json:"company_name,omitempty"`
	WillingToShift      string `json:"willing_to_shift"`
	PreferredSlot       string `json:"preferred_departure_slot_evening"`
	IncentivePreference string `json:"incentive_preference"`
}

// Willing reports whether the respondent answered yes to shifting departure time.
func (s SurveyResponse) Willing() bool {
	return strings.EqualFold(strings.TrimSpace(s.WillingToShift), "yes")
}

// EmissionEstimate is one row of the optional emissions/economics estimates file.
type EmissionEstimate struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}
