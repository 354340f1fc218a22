// Package outbox holds domain events waiting to be relayed to the message
// broker. Messages are written in the same transaction as the aggregate change
// that raised them and published afterwards.
package outbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrMessageIsNotConstructed is returned for a zero-value Message.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is a serialized domain event and its delivery state.
type Message struct {
	id          kernel.UUID
	eventID     string
	aggregateID string
	eventType   string
	payload     []byte
	createdAt   time.Time
	publishedAt *time.Time
	retryCount  int
	lastError   string
	guard       guard.ConstructorGuard
}

// NewMessage serializes event to JSON.
func NewMessage(event kernel.DomainEvent) (*Message, error) {
	if event == nil {
		return nil, errs.NewValueIsRequiredError("event")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("marshal %s: %w", event.EventType(), err))
	}

	return RestoreMessage(kernel.NewUUID(), event.EventID(), event.AggregateID(), event.EventType(), payload,
		event.OccurredOn(), nil, 0, "")
}

// RestoreMessage rebuilds a message from persistence.
func RestoreMessage(
	id kernel.UUID,
	eventID, aggregateID, eventType string,
	payload []byte,
	createdAt time.Time,
	publishedAt *time.Time,
	retryCount int,
	lastError string,
) (*Message, error) {
	var typeErr, payloadErr error
	if eventType == "" {
		typeErr = errs.NewValueIsRequiredError("eventType")
	}
	if len(payload) == 0 {
		payloadErr = errs.NewValueIsRequiredError("payload")
	}
	if err := errors.Join(id.Validate(), typeErr, payloadErr); err != nil {
		return nil, err
	}

	return &Message{
		id:          id,
		eventID:     eventID,
		aggregateID: aggregateID,
		eventType:   eventType,
		payload:     payload,
		createdAt:   createdAt,
		publishedAt: publishedAt,
		retryCount:  retryCount,
		lastError:   lastError,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID         { return m.id }
func (m *Message) EventID() string         { return m.eventID }
func (m *Message) AggregateID() string     { return m.aggregateID }
func (m *Message) EventType() string       { return m.eventType }
func (m *Message) Payload() []byte         { return m.payload }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }
func (m *Message) PublishedAt() *time.Time { return m.publishedAt }
func (m *Message) RetryCount() int         { return m.retryCount }
func (m *Message) LastError() string       { return m.lastError }
func (m *Message) IsPublished() bool       { return m.publishedAt != nil }

// MarkPublished records a successful delivery.
func (m *Message) MarkPublished(at time.Time) {
	m.publishedAt = &at
	m.lastError = ""
}

// MarkFailed records a failed delivery attempt.
func (m *Message) MarkFailed(cause error) {
	m.retryCount++
	if cause != nil {
		m.lastError = cause.Error()
	}
}
