package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDualLoggerWritesBoth(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "flowsync.log")

	dl, err := newWithWriter(&buf, path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("newWithWriter: %v", err)
	}
	dl.Logger.Info("session_opened", slog.String("project", "hitec"))
	dl.Logger.Debug("hidden")
	if err := dl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !strings.Contains(buf.String(), "msg=session_opened") || !strings.Contains(buf.String(), "project=hitec") {
		t.Errorf("stream output missing record: %q", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug record logged at info level")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "msg=session_opened") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestDualLoggerNoFile(t *testing.T) {
	var buf bytes.Buffer
	dl, err := newWithWriter(&buf, "", slog.LevelDebug)
	if err != nil {
		t.Fatalf("newWithWriter: %v", err)
	}
	dl.Logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug record, got %q", buf.String())
	}
	if err := dl.Close(); err != nil {
		t.Errorf("Close without file: %v", err)
	}
}

func TestDualLoggerBadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), slog.LevelInfo)
	if err == nil {
		t.Error("expected error for unwritable log path")
	}
}

func TestWriterSharesDestinations(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "access.log")
	dl, err := newWithWriter(&buf, path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("newWithWriter: %v", err)
	}
	defer dl.Close()

	if _, err := dl.Writer().Write([]byte("GET /health 200\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if buf.String() != "GET /health 200\n" || string(data) != "GET /health 200\n" {
		t.Errorf("stream %q, file %q", buf.String(), data)
	}
}
