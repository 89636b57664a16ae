// Package kafka announces confirmed reservations on a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotelmesh/domain"
	"hotelmesh/helpers"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTopic receives reservation events when no topic is configured.
const DefaultTopic = "hotelmesh.reservations.confirmed"

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReservationConfirmed is the event value, JSON encoded.
type ReservationConfirmed struct {
	TraceID       string    `json:"trace_id,omitempty"`
	ReservationID string    `json:"reservation_id"`
	HotelID       string    `json:"hotel_id"`
	CustomerName  string    `json:"customer_name"`
	InDate        string    `json:"in_date"`
	OutDate       string    `json:"out_date"`
	Rooms         int       `json:"rooms"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

// Publisher implements interfaces.ReservationPublisher. Messages are keyed by hotel id so the
// events of one hotel stay ordered within a partition.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewPublisher creates a publisher writing to topic on brokers (comma separated host:port list).
func NewPublisher(brokers, topic string) *Publisher {
	helpers.StrPanic(brokers, "adapters.kafka.publisher.go: brokers is required")
	if topic == "" {
		topic = DefaultTopic
	}
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

func (p *Publisher) PublishConfirmed(ctx context.Context, res domain.Reservation) error {
	event := ReservationConfirmed{
		ReservationID: res.ID,
		HotelID:       res.HotelID,
		CustomerName:  res.CustomerName,
		InDate:        res.InDate.Format(domain.DateLayout),
		OutDate:       res.OutDate.Format(domain.DateLayout),
		Rooms:         res.Rooms,
		ConfirmedAt:   p.now().UTC(),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		event.TraceID = sc.TraceID().String()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal reservation event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(res.HotelID),
		Value: value,
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{headers: &msg.Headers})

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write reservation event %s: %w", res.ID, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func splitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// headerCarrier adapts Kafka message headers to propagation.TextMapCarrier.
type headerCarrier struct {
	headers *[]kafka.Header
}

func (c headerCarrier) Get(key string) string {
	for _, h := range *c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i, h := range *c.headers {
		if h.Key == key {
			(*c.headers)[i].Value = []byte(value)
			return
		}
	}
	*c.headers = append(*c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(*c.headers))
	for _, h := range *c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}
