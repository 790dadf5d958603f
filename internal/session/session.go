package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/project"
)

// Dataset names, as used in counts, metrics and download routes.
const (
	Commutes  = "commutes"
	Traffic   = "traffic"
	Companies = "companies"
	Survey    = "survey"
	Emissions = "emissions"
)

// Session owns the tables loaded for one dashboard session. Tables are
// never modified after Open, so a Session may be shared across goroutines.
type Session struct {
	ID       string           `json:"id"`
	Project  *project.Project `json:"project"`
	LoadedAt time.Time        `json:"loaded_at"`

	commutes  *dataset.CommuteTable
	traffic   []dataset.TrafficSample
	companies []dataset.Company
	survey    []dataset.SurveyResponse
	emissions []dataset.EmissionEstimate
}

// Open loads every dataset named by p. Any invalid required file aborts the
// session; a missing emissions file is skipped.
func Open(p *project.Project) (*Session, error) {
	s := &Session{
		ID:       uuid.NewString(),
		Project:  p,
		LoadedAt: time.Now().UTC(),
	}

	var err error
	if s.commutes, err = dataset.LoadCommutes(p.Path(p.Datasets.Commutes)); err != nil {
		return nil, fmt.Errorf("loading commutes: %w", err)
	}
	if s.traffic, err = dataset.LoadTraffic(p.Path(p.Datasets.Traffic)); err != nil {
		return nil, fmt.Errorf("loading traffic: %w", err)
	}
	if s.companies, err = dataset.LoadCompanies(p.Path(p.Datasets.Companies)); err != nil {
		return nil, fmt.Errorf("loading companies: %w", err)
	}
	if s.survey, err = dataset.LoadSurvey(p.Path(p.Datasets.Survey)); err != nil {
		return nil, fmt.Errorf("loading survey: %w", err)
	}

	if p.Datasets.Emissions != "" {
		s.emissions, err = dataset.LoadEmissions(p.Path(p.Datasets.Emissions))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading emissions: %w", err)
		}
	}

	return s, nil
}

// Commutes returns the commute table. The table itself is read-only.
func (s *Session) Commutes() *dataset.CommuteTable { return s.commutes }

func (s *Session) Traffic() []dataset.TrafficSample {
	return append([]dataset.TrafficSample(nil), s.traffic...)
}

func (s *Session) Companies() []dataset.Company {
	return append([]dataset.Company(nil), s.companies...)
}

func (s *Session) Survey() []dataset.SurveyResponse {
	return append([]dataset.SurveyResponse(nil), s.survey...)
}

// Emissions returns the optional reference estimates, nil when not loaded.
func (s *Session) Emissions() []dataset.EmissionEstimate {
	if s.emissions == nil {
		return nil
	}
	return append([]dataset.EmissionEstimate(nil), s.emissions...)
}

// HasEmissions reports whether the optional emissions file was loaded.
func (s *Session) HasEmissions() bool { return s.emissions != nil }

// Counts returns the row count of every loaded dataset.
func (s *Session) Counts() map[string]int {
	counts := map[string]int{
		Commutes:  s.commutes.Len(),
		Traffic:   len(s.traffic),
		Companies: len(s.companies),
		Survey:    len(s.survey),
	}
	if s.HasEmissions() {
		counts[Emissions] = len(s.emissions)
	}
	return counts
}
