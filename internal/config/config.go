package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process settings. Project settings live in flowsync.yaml.
type Config struct {
	BindAddr        string        // e.g. ":8080"
	ProjectDir      string        // directory holding flowsync.yaml
	LogFile         string        // empty logs to stderr only
	LogLevel        slog.Level    // FLOWSYNC_LOG_LEVEL: debug, info, warn, error
	KafkaBrokers    []string      // empty disables scenario events
	KafkaTopic      string        // e.g. "flowsync.scenarios"
	ShutdownTimeout time.Duration // e.g. 10s
}

// Default values.
const (
	DefaultBindAddr        = ":8080"
	DefaultProjectDir      = "."
	DefaultKafkaTopic      = "flowsync.scenarios"
	DefaultShutdownTimeout = 10 * time.Second
)

// Load reads envFile into the environment when it exists, then builds the
// config from the environment. Variables already set are not overridden.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the config from FLOWSYNC_* environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		BindAddr:        getenv("FLOWSYNC_BIND_ADDR", DefaultBindAddr),
		ProjectDir:      getenv("FLOWSYNC_PROJECT_DIR", DefaultProjectDir),
		LogFile:         os.Getenv("FLOWSYNC_LOGFILE"),
		LogLevel:        slog.LevelInfo,
		KafkaBrokers:    splitList(os.Getenv("FLOWSYNC_KAFKA_BROKERS")),
		KafkaTopic:      getenv("FLOWSYNC_KAFKA_TOPIC", DefaultKafkaTopic),
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if s := os.Getenv("FLOWSYNC_LOG_LEVEL"); s != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s)); err != nil {
			return Config{}, fmt.Errorf("FLOWSYNC_LOG_LEVEL: %w", err)
		}
	}
	if s := os.Getenv("FLOWSYNC_SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("FLOWSYNC_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// PublishEnabled reports whether scenario events go to Kafka.
func (c Config) PublishEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
