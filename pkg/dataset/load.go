package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// Required columns per dataset file. Extra columns are ignored.
var (
	CommuteColumns   = []string{"company_id", "mode", "distance_km", "emission_kg", "sentiment", "flex_eligible"}
	TrafficColumns   = []string{"time", "vehicles_per_hour", "commute_time_min_for_10km", "congestion_index_0_100"}
	CompanyColumns   = []string{"company_name", "estimated_employees_in_hyderabad"}
	SurveyColumns    = []string{"willing_to_shift", "preferred_departure_slot_evening", "incentive_preference"}
	EmissionsColumns = []string{"metric", "value", "unit"}
)

// Optional columns, read when present and written back on export.
const (
	SectorColumn        = "sector"
	RespondentIDColumn  = "respondent_id"
	SurveyCompanyColumn = "company_name"
)

// firstDataLine is the file line of the first data row (line 1 is the header).
const firstDataLine = 2

// LoadCommutes reads and validates a commute records CSV file.
func LoadCommutes(path string) (*CommuteTable, error) {
	var table *CommuteTable
	err := withFile(path, func(r io.Reader) error {
		var err error
		table, err = ReadCommutes(r, path)
		return err
	})
	return table, err
}

// ReadCommutes parses commute records. Any invalid cell fails the whole read.
func ReadCommutes(r io.Reader, source string) (*CommuteTable, error) {
	f, err := readFrame(r, source, CommuteColumns)
	if err != nil {
		return nil, err
	}

	company := f.column("company_id")
	mode := f.column("mode")
	distance := f.column("distance_km")
	emission := f.column("emission_kg")
	sentiment := f.column("sentiment")
	flex := f.column("flex_eligible")

	report := validation.NewReport()
	records := make([]CommuteRecord, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		c := rowChecker{report: report, line: i + firstDataLine}
		records = append(records, CommuteRecord{
			CompanyID:    c.text("company_id", company[i]),
			Mode:         c.mode("mode", mode[i]),
			DistanceKM:   c.number("distance_km", distance[i], 0, math.Inf(1)),
			EmissionKG:   c.number("emission_kg", emission[i], 0, math.Inf(1)),
			Sentiment:    c.number("sentiment", sentiment[i], MinSentiment, MaxSentiment),
			FlexEligible: c.flag("flex_eligible", flex[i]),
		})
	}
	if !report.Valid {
		return nil, &DataFormatError{Source: source, Report: report}
	}
	return &CommuteTable{records: records}, nil
}

// LoadTraffic reads and validates the traffic time series CSV file.
func LoadTraffic(path string) ([]TrafficSample, error) {
	var samples []TrafficSample
	err := withFile(path, func(r io.Reader) error {
		var err error
		samples, err = ReadTraffic(r, path)
		return err
	})
	return samples, err
}

// ReadTraffic parses traffic samples.
func ReadTraffic(r io.Reader, source string) ([]TrafficSample, error) {
	f, err := readFrame(r, source, TrafficColumns)
	if err != nil {
		return nil, err
	}

	clock := f.column("time")
	vehicles := f.column("vehicles_per_hour")
	commute := f.column("commute_time_min_for_10km")
	congestion := f.column("congestion_index_0_100")

	report := validation.NewReport()
	samples := make([]TrafficSample, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		c := rowChecker{report: report, line: i + firstDataLine}
		hour, minute := c.clock("time", clock[i])
		samples = append(samples, TrafficSample{
			Time:               fmt.Sprintf("%02d:%02d", hour, minute),
			Hour:               hour,
			Minute:             minute,
			VehiclesPerHour:    c.number("vehicles_per_hour", vehicles[i], 0, math.Inf(1)),
			CommuteTimeMin10KM: c.number("commute_time_min_for_10km", commute[i], 0, math.Inf(1)),
			CongestionIndex:    c.number("congestion_index_0_100", congestion[i], 0, 100),
		})
	}
	if !report.Valid {
		return nil, &DataFormatError{Source: source, Report: report}
	}
	return samples, nil
}

// LoadCompanies reads and validates the company sample CSV file.
func LoadCompanies(path string) ([]Company, error) {
	var companies []Company
	err := withFile(path, func(r io.Reader) error {
		var err error
		companies, err = ReadCompanies(r, path)
		return err
	})
	return companies, err
}

// ReadCompanies parses company rows.
func ReadCompanies(r io.Reader, source string) ([]Company, error) {
	f, err := readFrame(r, source, CompanyColumns)
	if err != nil {
		return nil, err
	}

	names := f.column("company_name")
	employees := f.column("estimated_employees_in_hyderabad")
	sector := f.optional(SectorColumn)

	report := validation.NewReport()
	companies := make([]Company, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		c := rowChecker{report: report, line: i + firstDataLine}
		companies = append(companies, Company{
			Name:      c.text("company_name", names[i]),
			Employees: c.count("estimated_employees_in_hyderabad", employees[i]),
			Sector:    strings.TrimSpace(sector[i]),
		})
	}
	if !report.Valid {
		return nil, &DataFormatError{Source: source, Report: report}
	}
	return companies, nil
}

// LoadSurvey reads the commuter survey CSV file.
func LoadSurvey(path string) ([]SurveyResponse, error) {
	var responses []SurveyResponse
	err := withFile(path, func(r io.Reader) error {
		var err error
		responses, err = ReadSurvey(r, path)
		return err
	})
	return responses, err
}

// ReadSurvey parses survey answers. Answers are free text; blank answers are kept.
func ReadSurvey(r io.Reader, source string) ([]SurveyResponse, error) {
	f, err := readFrame(r, source, SurveyColumns)
	if err != nil {
		return nil, err
	}

	willing := f.column("willing_to_shift")
	slot := f.column("preferred_departure_slot_evening")
	incentive := f.column("incentive_preference")
	respondent := f.optional(RespondentIDColumn)
	company := f.optional(SurveyCompanyColumn)

	responses := make([]SurveyResponse, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		responses = append(responses, SurveyResponse{
			RespondentID:        strings.TrimSpace(respondent[i]),
			CompanyName:         strings.TrimSpace(company[i]),
			WillingToShift:      willing[i],
			PreferredSlot:       slot[i],
			IncentivePreference: incentive[i],
		})
	}
	return responses, nil
}

// LoadEmissions reads the optional emissions and economics estimates file.
func LoadEmissions(path string) ([]EmissionEstimate, error) {
	var estimates []EmissionEstimate
	err := withFile(path, func(r io.Reader) error {
		var err error
		estimates, err = ReadEmissions(r, path)
		return err
	})
	return estimates, err
}

// ReadEmissions parses emission estimate rows.
func ReadEmissions(r io.Reader, source string) ([]EmissionEstimate, error) {
	f, err := readFrame(r, source, EmissionsColumns)
	if err != nil {
		return nil, err
	}

	metric := f.column("metric")
	value := f.column("value")
	unit := f.column("unit")

	report := validation.NewReport()
	estimates := make([]EmissionEstimate, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		c := rowChecker{report: report, line: i + firstDataLine}
		estimates = append(estimates, EmissionEstimate{
			Metric: c.text("metric", metric[i]),
			Value:  c.number("value", value[i], math.Inf(-1), math.Inf(1)),
			Unit:   unit[i],
		})
	}
	if !report.Valid {
		return nil, &DataFormatError{Source: source, Report: report}
	}
	return estimates, nil
}

func withFile(path string, fn func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dataset: %w", err)
	}
	defer file.Close()
	return fn(file)
}
