package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FLOWSYNC_BIND_ADDR", "FLOWSYNC_PROJECT_DIR", "FLOWSYNC_LOGFILE", "FLOWSYNC_LOG_LEVEL",
		"FLOWSYNC_KAFKA_BROKERS", "FLOWSYNC_KAFKA_TOPIC", "FLOWSYNC_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BindAddr != DefaultBindAddr {
		t.Errorf("BindAddr = %q, want %q", cfg.BindAddr, DefaultBindAddr)
	}
	if cfg.ProjectDir != "." {
		t.Errorf("ProjectDir = %q, want .", cfg.ProjectDir)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.KafkaTopic != DefaultKafkaTopic {
		t.Errorf("KafkaTopic = %q", cfg.KafkaTopic)
	}
	if cfg.PublishEnabled() {
		t.Error("publishing should be disabled without brokers")
	}
	if cfg.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLOWSYNC_BIND_ADDR", ":9090")
	t.Setenv("FLOWSYNC_LOG_LEVEL", "debug")
	t.Setenv("FLOWSYNC_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("FLOWSYNC_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BindAddr != ":9090" {
		t.Errorf("BindAddr = %q", cfg.BindAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if want := []string{"kafka-1:9092", "kafka-2:9092"}; !reflect.DeepEqual(cfg.KafkaBrokers, want) {
		t.Errorf("KafkaBrokers = %v, want %v", cfg.KafkaBrokers, want)
	}
	if !cfg.PublishEnabled() {
		t.Error("publishing should be enabled with brokers")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLOWSYNC_LOG_LEVEL", "chatty")
	if _, err := FromEnv(); err == nil {
		t.Error("expected error for bad log level")
	}

	clearEnv(t)
	t.Setenv("FLOWSYNC_SHUTDOWN_TIMEOUT", "soon")
	if _, err := FromEnv(); err == nil {
		t.Error("expected error for bad shutdown timeout")
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("FLOWSYNC_KAFKA_TOPIC")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FLOWSYNC_KAFKA_TOPIC=pilot.events\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KafkaTopic != "pilot.events" {
		t.Errorf("KafkaTopic = %q, want pilot.events", cfg.KafkaTopic)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
