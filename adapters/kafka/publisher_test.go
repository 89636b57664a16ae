package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotelmesh/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testReservation() domain.Reservation {
	return domain.Reservation{
		ID:           "9f1c",
		HotelID:      "4",
		CustomerName: "Alice",
		InDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		OutDate:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Rooms:        2,
	}
}

func TestPublisher_PublishConfirmed(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)
	confirmedAt := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return confirmedAt }

	require.NoError(t, p.PublishConfirmed(context.Background(), testReservation()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "4", string(msg.Key))

	var event ReservationConfirmed
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, ReservationConfirmed{
		ReservationID: "9f1c",
		HotelID:       "4",
		CustomerName:  "Alice",
		InDate:        "2024-06-01",
		OutDate:       "2024-06-03",
		Rooms:         2,
		ConfirmedAt:   confirmedAt,
	}, event)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newPublisher(w)

	err := p.PublishConfirmed(context.Background(), testReservation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write reservation event 9f1c")
}

func TestHeaderCarrier(t *testing.T) {
	var headers []kafka.Header
	c := headerCarrier{headers: &headers}

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
	propagation.TraceContext{}.Inject(ctx, c)

	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", c.Get("traceparent"))
	assert.Equal(t, []string{"traceparent"}, c.Keys())

	c.Set("traceparent", "replaced")
	assert.Len(t, headers, 1)
	assert.Equal(t, "replaced", c.Get("traceparent"))
	assert.Empty(t, c.Get("missing"))
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, splitBrokers(" kafka-1:9092, ,kafka-2:9092"))
}

func TestNewPublisher(t *testing.T) {
	p := NewPublisher("localhost:9092", "")
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, DefaultTopic, w.Topic)
	assert.NoError(t, p.Close())

	assert.PanicsWithValue(t, "adapters.kafka.publisher.go: brokers is required", func() {
		NewPublisher("", "topic")
	})
}
