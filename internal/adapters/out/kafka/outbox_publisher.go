// Package kafka publishes outbox messages to Kafka as CloudEvents in binary
// content mode: the event JSON is the record value and the envelope travels
// in ce-* headers.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"forwarding/internal/core/domain/model/outbox"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

const (
	cloudEventsSpecVersion = "1.0"
	eventSource            = "forwarding"
	contentTypeJSON        = "application/json"

	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
)

// ErrPublisherUnavailable is returned while the circuit breaker is open.
var ErrPublisherUnavailable = errors.New("kafka publisher unavailable")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OutboxPublisher implements ports.EventPublisher. Writes go through a
// circuit breaker that opens after consecutive failures, so a down broker
// costs one fast error per message instead of a full write timeout.
type OutboxPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker
	topic   string
	logger  *slog.Logger
}

// NewOutboxPublisher creates a synchronous writer for topic.
func NewOutboxPublisher(brokers []string, topic string, logger *slog.Logger) *OutboxPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return NewOutboxPublisherWithWriter(writer, topic, logger)
}

// NewOutboxPublisherWithWriter wires a custom writer, for tests.
func NewOutboxPublisherWithWriter(writer messageWriter, topic string, logger *slog.Logger) *OutboxPublisher {
	logger = logger.With("component", "kafka_publisher", "topic", topic)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka:" + topic,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &OutboxPublisher{
		writer:  writer,
		breaker: breaker,
		topic:   topic,
		logger:  logger,
	}
}

// Publish writes one message. Records are keyed by aggregate id so all events
// of an order land on the same partition in order.
func (p *OutboxPublisher) Publish(ctx context.Context, m *outbox.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	msg := BuildMessage(m)
	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.writer.WriteMessages(ctx, msg)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s: %w", ErrPublisherUnavailable, p.topic, err)
	}
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", m.EventID(), p.topic, err)
	}

	p.logger.Debug("event published", "event_id", m.EventID(), "event_type", m.EventType())
	return nil
}

// State reports the breaker state, for health output.
func (p *OutboxPublisher) State() gobreaker.State {
	return p.breaker.State()
}

func (p *OutboxPublisher) Close() error {
	return p.writer.Close()
}

// BuildMessage maps an outbox message onto a Kafka record with CloudEvents headers.
func BuildMessage(m *outbox.Message) kafka.Message {
	return kafka.Message{
		Key:   []byte(m.AggregateID()),
		Value: m.Payload(),
		Headers: []kafka.Header{
			{Key: "ce-specversion", Value: []byte(cloudEventsSpecVersion)},
			{Key: "ce-type", Value: []byte(m.EventType())},
			{Key: "ce-source", Value: []byte(eventSource)},
			{Key: "ce-id", Value: []byte(m.EventID())},
			{Key: "ce-time", Value: []byte(m.CreatedAt().UTC().Format(time.RFC3339))},
			{Key: "ce-subject", Value: []byte(m.AggregateID())},
			{Key: "content-type", Value: []byte(contentTypeJSON)},
		},
		Time: m.CreatedAt(),
	}
}
