package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// rowChecker coerces the raw cells of one data row and records a finding for
// every value outside its declared domain. Failed cells coerce to zero values.
type rowChecker struct {
	report *validation.Report
	line   int
}

func (c rowChecker) fail(field, raw, message, expected string) {
	c.report.AddError(validation.Result{
		Level:       validation.LevelRecord,
		Message:     message,
		Field:       field,
		Line:        c.line,
		ActualValue: raw,
		Expected:    expected,
	})
}

func (c rowChecker) text(field, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		c.fail(field, raw, fmt.Sprintf("%s must not be empty", field), "non-empty text")
	}
	return v
}

// number parses a finite float within [lo, hi]. Pass math.Inf(1) for no upper bound.
func (c rowChecker) number(field, raw string, lo, hi float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	expected := fmt.Sprintf("%g-%g", lo, hi)
	if math.IsInf(hi, 1) {
		expected = fmt.Sprintf(">= %g", lo)
	}
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.fail(field, raw, fmt.Sprintf("%s %q is not a number", field, raw), expected)
		return 0
	}
	if v < lo || v > hi {
		c.fail(field, raw, fmt.Sprintf("%s %g is outside %s", field, v, expected), expected)
		return 0
	}
	return v
}

func (c rowChecker) count(field, raw string) int {
	v := c.number(field, raw, 0, math.Inf(1))
	if v != math.Trunc(v) {
		c.fail(field, raw, fmt.Sprintf("%s %g is not a whole number", field, v), "whole number >= 0")
		return 0
	}
	if v >= math.MaxInt {
		c.fail(field, raw, fmt.Sprintf("%s %g is too large", field, v), fmt.Sprintf("whole number < %d", math.MaxInt))
		return 0
	}
	return int(v)
}

func (c rowChecker) flag(field, raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y", "1":
		return true
	case "false", "no", "n", "0":
		return false
	}
	c.fail(field, raw, fmt.Sprintf("%s %q is not a boolean", field, raw), "true/false, yes/no, 1/0")
	return false
}

func (c rowChecker) mode(field, raw string) Mode {
	m, err := ParseMode(raw)
	if err != nil {
		names := make([]string, len(Modes))
		for i, known := range Modes {
			names[i] = string(known)
		}
		c.fail(field, raw, err.Error(), strings.Join(names, ", "))
	}
	return m
}

// clock parses an HH:MM time of day.
func (c rowChecker) clock(field, raw string) (hour, minute int) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		c.fail(field, raw, fmt.Sprintf("%s %q is not an HH:MM time", field, raw), "HH:MM")
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
