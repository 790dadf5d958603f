package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestWrapHandlerRecordsStatus(t *testing.T) {
	m := New()
	h := m.WrapHandler("/api/simulate", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/simulate", nil))

	out := scrape(t, m)
	if !strings.Contains(out, `flowsync_http_requests_total{route="/api/simulate",status="400"} 1`) {
		t.Errorf("request counter missing:\n%s", out)
	}
	if !strings.Contains(out, `flowsync_http_request_duration_seconds_count{route="/api/simulate"} 1`) {
		t.Errorf("duration histogram missing:\n%s", out)
	}
}

func TestDomainMetrics(t *testing.T) {
	m := New()
	m.Simulation(OutcomeOK)
	m.Simulation(OutcomeOK)
	m.Simulation(OutcomeInvalid)
	m.PublishFailed()
	m.SetDatasetRows("commutes", 24)

	out := scrape(t, m)
	for _, want := range []string{
		`flowsync_simulations_total{outcome="ok"} 2`,
		`flowsync_simulations_total{outcome="invalid"} 1`,
		`flowsync_scenario_publish_errors_total 1`,
		`flowsync_dataset_rows{dataset="commutes"} 24`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.Simulation(OutcomeOK)
	m.PublishFailed()
	m.SetDatasetRows("traffic", 1)

	rec := httptest.NewRecorder()
	m.WrapHandler("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.Simulation(OutcomeOK)
	if strings.Contains(scrape(t, b), `outcome="ok"`) {
		t.Error("metrics leaked across instances")
	}
}
