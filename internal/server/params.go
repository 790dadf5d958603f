package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// floatParam reads a numeric query parameter, falling back to def when absent.
func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &scenario.InvalidParameterError{Param: name, Value: raw, Expected: "a number"}
	}
	return v, nil
}

// intParam reads a whole-number query parameter, falling back to def when absent.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &scenario.InvalidParameterError{Param: name, Value: raw, Expected: "a whole number"}
	}
	return v, nil
}

type errorBody struct {
	Error string `json:"error"`
	Param string `json:"param,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response_encode_failed", slog.Any("err", err))
	}
}

// writeError maps invalid parameters to 400 and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ipe *scenario.InvalidParameterError
	if errors.As(err, &ipe) {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Param: ipe.Param})
		return
	}
	s.log.Error("request_failed", slog.String("path", r.URL.Path), slog.Any("err", err))
	s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}
