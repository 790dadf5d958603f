package dataset

import (
	"fmt"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// DataFormatError reports a dataset file whose columns or values do not match
// the documented schema. Report holds every finding, not just the first.
type DataFormatError struct {
	Source string
	Report *validation.Report
}

func (e *DataFormatError) Error() string {
	first, ok := e.Report.FirstError()
	if !ok {
		return fmt.Sprintf("%s: malformed data", e.Source)
	}
	msg := fmt.Sprintf("%s: %s", e.Source, first.Message)
	if first.Line > 0 {
		msg = fmt.Sprintf("%s: line %d: %s", e.Source, first.Line, first.Message)
	}
	if n := len(e.Report.Errors); n > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, n-1)
	}
	return msg
}

func formatError(source string, message string) *DataFormatError {
	r := validation.NewReport()
	r.AddError(validation.Result{Level: validation.LevelColumns, Message: message})
	return &DataFormatError{Source: source, Report: r}
}
