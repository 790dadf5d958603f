package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

// Event records one computed scenario.
type Event struct {
	RunID      string              `json:"run_id"`
	SessionID  string              `json:"session_id"`
	Project    string              `json:"project"`
	At         time.Time           `json:"at"`
	Parameters scenario.Parameters `json:"parameters"`
	Summary    scenario.KPISummary `json:"summary"`
}

// Publisher delivers scenario events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes events as JSON messages keyed by session id.
type Kafka struct {
	topic  string
	writer messageWriter
	log    *slog.Logger
}

var errNilLogger = errors.New("publisher requires a logger")

// NewKafka builds a synchronous Kafka publisher for topic.
func NewKafka(brokers []string, topic string, log *slog.Logger) (*Kafka, error) {
	if log == nil {
		return nil, errNilLogger
	}
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka topic must not be empty")
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newKafkaWithWriter(topic, w, log)
}

// newKafkaWithWriter wires the provided writer into the publisher. It is used in tests.
func newKafkaWithWriter(topic string, w messageWriter, log *slog.Logger) (*Kafka, error) {
	if log == nil {
		return nil, errNilLogger
	}
	return &Kafka{
		topic:  topic,
		writer: w,
		log:    log.With(slog.String("component", "scenario_publisher")),
	}, nil
}

func (k *Kafka) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding scenario event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.SessionID),
		Value: payload,
		Time:  e.At,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "run-id", Value: []byte(e.RunID)},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		k.log.Warn("scenario_publish_failed", slog.String("run_id", e.RunID), slog.Any("err", err))
		return fmt.Errorf("publishing to %s: %w", k.topic, err)
	}
	k.log.Debug("scenario_published", slog.String("run_id", e.RunID), slog.Int("bytes", len(payload)))
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
