package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/metrics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/publish"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/session"
)

// publishTimeout bounds how long a simulate request waits on the event sink.
const publishTimeout = 2 * time.Second

// Options configures a Server. Zero fields fall back to quiet defaults.
type Options struct {
	Addr      string
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Publisher publish.Publisher
	AccessLog io.Writer // nil disables access logging
}

// Server serves the dashboard data API for one session.
type Server struct {
	session   *session.Session
	log       *slog.Logger
	metrics   *metrics.Metrics
	publisher publish.Publisher
	accessLog io.Writer
	http      *http.Server
}

// New creates a server over a loaded session.
func New(sess *session.Session, opts Options) *Server {
	s := &Server{
		session:   sess,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		publisher: opts.Publisher,
		accessLog: opts.AccessLog,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.publisher == nil {
		s.publisher = publish.Nop{}
	}
	for name, rows := range sess.Counts() {
		s.metrics.SetDatasetRows(name, rows)
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed API with metrics and access logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	s.route(r, http.MethodGet, "/health", s.handleHealth)
	s.route(r, http.MethodGet, "/api/session", s.handleSession)
	s.route(r, http.MethodGet, "/api/validation", s.handleValidation)
	s.route(r, http.MethodGet, "/api/overview", s.handleOverview)
	s.route(r, http.MethodGet, "/api/traffic", s.handleTraffic)
	s.route(r, http.MethodGet, "/api/heatmap", s.handleHeatmap)
	s.route(r, http.MethodGet, "/api/companies", s.handleCompanies)
	s.route(r, http.MethodGet, "/api/sentiment", s.handleSentiment)
	s.route(r, http.MethodGet, "/api/impact", s.handleImpact)
	s.route(r, http.MethodGet, "/api/pilot", s.handlePilot)
	s.route(r, http.MethodGet, "/api/hotspots", s.handleHotspots)
	s.route(r, http.MethodGet, "/api/baseline", s.handleBaseline)
	s.route(r, http.MethodPost, "/api/simulate", s.handleSimulate)
	s.route(r, http.MethodGet, "/api/download/{dataset}", s.handleDownload)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	if s.accessLog == nil {
		return r
	}
	return handlers.LoggingHandler(s.accessLog, r)
}

func (s *Server) route(r *mux.Router, method, path string, h http.HandlerFunc) {
	r.Handle(path, s.metrics.WrapHandler(path, h)).Methods(method)
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("server_starting",
		slog.String("addr", s.http.Addr),
		slog.String("session_id", s.session.ID),
		slog.String("project", s.session.Project.Name))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and closes
// the event publisher.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if cerr := s.publisher.Close(); cerr != nil && err == nil {
		err = cerr
	}
	s.log.Info("server_stopped", slog.String("session_id", s.session.ID))
	return err
}
