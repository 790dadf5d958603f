package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DualLogger writes structured logs to stderr and, optionally, a log file.
type DualLogger struct {
	Logger *slog.Logger
	out    io.Writer
	file   *os.File
}

// New creates a text slog logger. When logPath is set, records are also
// appended to that file.
func New(logPath string, level slog.Level) (*DualLogger, error) {
	return newWithWriter(os.Stderr, logPath, level)
}

func newWithWriter(base io.Writer, logPath string, level slog.Level) (*DualLogger, error) {
	writers := []io.Writer{base}

	var file *os.File
	if logPath != "" {
		var err error
		file, err = os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, file)
	}

	out := io.MultiWriter(writers...)
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})

	return &DualLogger{Logger: slog.New(handler), out: out, file: file}, nil
}

// Writer returns the destination of the logger, for access logs that bypass slog.
func (d *DualLogger) Writer() io.Writer {
	return d.out
}

// Close releases the log file, if any.
func (d *DualLogger) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	return d.file.Close()
}
