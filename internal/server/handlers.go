package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/metrics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/publish"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/session"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/analytics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/impact"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/pilot"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/project"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// maxBodyBytes caps simulate request bodies.
const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"session_id": s.session.ID,
	})
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":        s.session.ID,
		"project":   s.session.Project,
		"loaded_at": s.session.LoadedAt,
		"rows":      s.session.Counts(),
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	report := project.Validate(s.session.Project)
	_, analyticsReport := analytics.Resolve(s.session.Traffic(), s.session.Companies(), s.session.Survey())
	report.Merge(analyticsReport)
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleOverview(w http.ResponseWriter, _ *http.Request) {
	overview, report := analytics.Resolve(s.session.Traffic(), s.session.Companies(), s.session.Survey())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"overview":   overview,
		"validation": report,
	})
}

func (s *Server) handleTraffic(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("window")
	if raw == "" {
		raw = s.session.Project.Dashboard.TrafficWindow
	}
	window, err := analytics.ParseWindow(raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"window":  window,
		"samples": analytics.TrafficWindow(s.session.Traffic(), window),
	})
}

func (s *Server) handleHeatmap(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"cells": analytics.CongestionHeatmap(s.session.Traffic()),
	})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	d := s.session.Project.Dashboard
	top, err := intParam(r, "top", d.TopN)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	reduction, err := floatParam(r, "reduction", d.ReductionPct)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	profiles, err := analytics.TopCompanies(s.session.Companies(), top, reduction)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"top":           top,
		"reduction_pct": reduction,
		"companies":     profiles,
	})
}

func (s *Server) handleSentiment(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, analytics.SurveySentiment(s.session.Survey()))
}

func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	d := s.session.Project.Dashboard
	var a impact.Assumptions
	var err error
	if a.ReductionPct, err = floatParam(r, "reduction", d.ReductionPct); err != nil {
		s.writeError(w, r, err)
		return
	}
	if a.TimeSavedMin, err = floatParam(r, "time_saved", d.TimeSavedMin); err != nil {
		s.writeError(w, r, err)
		return
	}
	if a.ValuePerHour, err = floatParam(r, "value_per_hour", d.ValuePerHour); err != nil {
		s.writeError(w, r, err)
		return
	}

	report, err := impact.Estimate(s.session.Companies(), a)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"estimate":  report,
		"reference": s.session.Emissions(),
	})
}

func (s *Server) buildPlan(r *http.Request) (*pilot.Plan, error) {
	top, err := intParam(r, "top", s.session.Project.Dashboard.TopN)
	if err != nil {
		return nil, err
	}
	return pilot.Build(s.session.Companies(), top)
}

func (s *Server) handlePilot(w http.ResponseWriter, r *http.Request) {
	plan, err := s.buildPlan(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleHotspots(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, analytics.MapHotspots(dataset.Hotspots()))
}

func (s *Server) handleBaseline(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, scenario.Baseline(s.session.Commutes()))
}

type simulateResponse struct {
	RunID      string              `json:"run_id"`
	Parameters scenario.Parameters `json:"parameters"`
	Summary    scenario.KPISummary `json:"summary"`
	Baseline   scenario.KPISummary `json:"baseline"`
}

// handleSimulate recomputes the KPIs. Fields missing from the body keep the
// project's scenario defaults; an empty body runs the defaults as is.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	params := s.session.Project.Scenario

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := decodeBody(dec, &params); err != nil {
		s.metrics.Simulation(metrics.OutcomeInvalid)
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: fmt.Sprintf("malformed request body: %v", err)})
		return
	}

	table := s.session.Commutes()
	summary, err := scenario.Simulate(table, params)
	if err != nil {
		s.metrics.Simulation(metrics.OutcomeInvalid)
		s.writeError(w, r, err)
		return
	}
	s.metrics.Simulation(metrics.OutcomeOK)

	resp := simulateResponse{
		RunID:      uuid.NewString(),
		Parameters: params,
		Summary:    summary,
		Baseline:   scenario.Baseline(table),
	}
	s.publishEvent(r.Context(), resp)

	s.log.Debug("scenario_simulated",
		slog.String("run_id", resp.RunID),
		slog.Float64("flex_adoption_rate", params.FlexAdoptionRate),
		slog.Float64("incentive_uptake", params.IncentiveUptake),
		slog.String("target_mode", string(params.TargetMode)),
		slog.Int("shifted", summary.Shifted))
	s.writeJSON(w, http.StatusOK, resp)
}

// decodeBody reads exactly one JSON value into v. An empty body leaves v
// untouched; anything after the first value is rejected.
func decodeBody(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after the JSON object")
	}
	return nil
}

// publishEvent forwards a computed scenario to the event sink. Failures are
// logged and counted; the caller still gets its result.
func (s *Server) publishEvent(ctx context.Context, resp simulateResponse) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := s.publisher.Publish(ctx, publish.Event{
		RunID:      resp.RunID,
		SessionID:  s.session.ID,
		Project:    s.session.Project.Name,
		At:         time.Now().UTC(),
		Parameters: resp.Parameters,
		Summary:    resp.Summary,
	})
	if err != nil {
		s.metrics.PublishFailed()
		s.log.Warn("scenario_event_dropped", slog.String("run_id", resp.RunID), slog.Any("err", err))
	}
}

// handleDownload exports one dataset, or the staggered plan, as CSV.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["dataset"]
	files := s.session.Project.Datasets

	var buf bytes.Buffer
	var filename string
	var err error
	switch name {
	case session.Commutes:
		filename, err = files.Commutes, dataset.WriteCommutes(&buf, s.session.Commutes())
	case session.Traffic:
		filename, err = files.Traffic, dataset.WriteTraffic(&buf, s.session.Traffic())
	case session.Companies:
		filename, err = files.Companies, dataset.WriteCompanies(&buf, s.session.Companies())
	case session.Survey:
		filename, err = files.Survey, dataset.WriteSurvey(&buf, s.session.Survey())
	case session.Emissions:
		if !s.session.HasEmissions() {
			s.writeJSON(w, http.StatusNotFound, errorBody{Error: "emissions estimates were not loaded"})
			return
		}
		filename, err = files.Emissions, dataset.WriteEmissions(&buf, s.session.Emissions())
	case "plan":
		plan, perr := s.buildPlan(r)
		if perr != nil {
			s.writeError(w, r, perr)
			return
		}
		filename, err = "flowsync_staggered_plan.csv", plan.WriteCSV(&buf)
	default:
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: fmt.Sprintf("unknown dataset %q", name)})
		return
	}
	if err != nil {
		s.writeError(w, r, fmt.Errorf("exporting %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(filename)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Warn("download_write_failed", slog.String("dataset", name), slog.Any("err", err))
	}
}
