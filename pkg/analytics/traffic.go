package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// Window selects a time-of-day range of the traffic series.
type Window string

const (
	WindowFull    Window = "full"
	WindowMorning Window = "morning"
	WindowEvening Window = "evening"
)

// Windows lists the selectable windows.
var Windows = []Window{WindowFull, WindowMorning, WindowEvening}

// ParseWindow validates a window name. An empty name selects the full day.
func ParseWindow(raw string) (Window, error) {
	if raw == "" {
		return WindowFull, nil
	}
	for _, w := range Windows {
		if Window(raw) == w {
			return w, nil
		}
	}
	return "", &scenario.InvalidParameterError{
		Param:    "window",
		Value:    raw,
		Expected: "one of full, morning, evening",
	}
}

// Bounds returns the window as half-open minutes of the day [from, to).
func (w Window) Bounds() (from, to int) {
	switch w {
	case WindowMorning:
		return 8 * 60, 11 * 60
	case WindowEvening:
		return 16 * 60, 20 * 60
	default:
		return 0, 24 * 60
	}
}

// TrafficWindow returns the samples inside w, in input order.
func TrafficWindow(samples []dataset.TrafficSample, w Window) []dataset.TrafficSample {
	from, to := w.Bounds()
	out := make([]dataset.TrafficSample, 0, len(samples))
	for _, s := range samples {
		if m := s.MinuteOfDay(); m >= from && m < to {
			out = append(out, s)
		}
	}
	return out
}

// HeatmapCell is the mean congestion index of one hour of the day.
type HeatmapCell struct {
	Hour            int     `json:"hour"`
	CongestionIndex float64 `json:"congestion_index"`
	Samples         int     `json:"samples"`
}

// CongestionHeatmap averages the congestion index per hour, sorted by hour.
func CongestionHeatmap(samples []dataset.TrafficSample) []HeatmapCell {
	byHour := make(map[int][]float64)
	for _, s := range samples {
		byHour[s.Hour] = append(byHour[s.Hour], s.CongestionIndex)
	}

	cells := make([]HeatmapCell, 0, len(byHour))
	for hour, values := range byHour {
		cells = append(cells, HeatmapCell{
			Hour:            hour,
			CongestionIndex: stat.Mean(values, nil),
			Samples:         len(values),
		})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Hour < cells[j].Hour })
	return cells
}
