package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// frame is a CSV file loaded as an all-string dataframe. Type coercion happens
// later, per table, so no column type is ever inferred from the data.
type frame struct {
	source string
	header []string
	df     dataframe.DataFrame
	rows   int
}

// readFrame parses CSV text and checks that every required column is present.
// A header-only file yields a frame with zero rows.
func readFrame(r io.Reader, source string, required []string) (*frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, formatError(source, fmt.Sprintf("unreadable CSV: %v", err))
	}
	if len(records) == 0 {
		return nil, formatError(source, "missing header row")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	report := validation.NewReport()
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		if h != "" && seen[h] {
			report.AddError(validation.Result{
				Level:   validation.LevelColumns,
				Message: fmt.Sprintf("duplicate column %q", h),
				Field:   h,
			})
		}
		seen[h] = true
	}
	for _, col := range required {
		if !seen[col] {
			report.AddError(validation.Result{
				Level:    validation.LevelColumns,
				Message:  fmt.Sprintf("missing required column %q", col),
				Field:    col,
				Expected: strings.Join(required, ", "),
			})
		}
	}
	if !report.Valid {
		return nil, &DataFormatError{Source: source, Report: report}
	}

	f := &frame{source: source, header: header, rows: len(records) - 1}
	if f.rows == 0 {
		return f, nil
	}

	rows := make([][]string, 0, len(records))
	rows = append(rows, header)
	rows = append(rows, records[1:]...)
	f.df = dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if f.df.Err != nil {
		return nil, formatError(source, fmt.Sprintf("loading frame: %v", f.df.Err))
	}
	return f, nil
}

// column returns the raw values of a column in row order.
func (f *frame) column(name string) []string {
	if f.rows == 0 {
		return nil
	}
	return f.df.Col(name).Records()
}

// optional returns the raw values of a column the file may omit. An absent
// column reads as blanks.
func (f *frame) optional(name string) []string {
	for _, h := range f.header {
		if h == name {
			return f.column(name)
		}
	}
	return make([]string, f.rows)
}

// WriteFrame writes a header and rows as CSV. Values are written verbatim.
func WriteFrame(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		cw.Flush()
		return cw.Error()
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	records = append(records, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("building frame: %w", df.Err)
	}
	return df.WriteCSV(w)
}
