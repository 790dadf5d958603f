package publish

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() Event {
	return Event{
		RunID:      "run-1",
		SessionID:  "session-1",
		Project:    "HITEC City pilot",
		At:         time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC),
		Parameters: scenario.Parameters{FlexAdoptionRate: 0.4, IncentiveUptake: 0.5, TargetMode: dataset.ModeShuttle},
		Summary:    scenario.KPISummary{Records: 24, Shifted: 3, CongestionIndex: 61.2},
	}
}

func TestKafkaPublishEncodesEvent(t *testing.T) {
	w := &fakeWriter{}
	p, err := newKafkaWithWriter("flowsync.scenarios", w, discardLogger())
	if err != nil {
		t.Fatalf("newKafkaWithWriter: %v", err)
	}
	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "session-1" {
		t.Errorf("key = %q, want session-1", msg.Key)
	}
	var got Event
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.RunID != "run-1" || got.Parameters.TargetMode != dataset.ModeShuttle || got.Summary.Shifted != 3 {
		t.Errorf("decoded event = %+v", got)
	}
}

func TestKafkaPublishWrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p, _ := newKafkaWithWriter("flowsync.scenarios", &fakeWriter{err: boom}, discardLogger())
	err := p.Publish(context.Background(), sampleEvent())
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped writer error, got %v", err)
	}
}

func TestKafkaClose(t *testing.T) {
	w := &fakeWriter{}
	p, _ := newKafkaWithWriter("t", w, discardLogger())
	if err := p.Close(); err != nil || !w.closed {
		t.Errorf("Close = %v, closed = %v", err, w.closed)
	}
}

func TestNewKafkaValidates(t *testing.T) {
	if _, err := NewKafka([]string{"localhost:9092"}, "t", nil); err == nil {
		t.Error("expected error for nil logger")
	}
	if _, err := NewKafka([]string{"localhost:9092"}, " ", discardLogger()); err == nil {
		t.Error("expected error for empty topic")
	}
	if _, err := NewKafka(nil, "t", discardLogger()); err == nil {
		t.Error("expected error for no brokers")
	}
	p, err := NewKafka([]string{"localhost:9092"}, "t", discardLogger())
	if err != nil {
		t.Fatalf("NewKafka: %v", err)
	}
	_ = p.Close()
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Errorf("Nop.Publish = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Nop.Close = %v", err)
	}
}
