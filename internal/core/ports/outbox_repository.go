package ports

import (
	"context"

	"forwarding/internal/core/domain/model/outbox"
)

// OutboxRepository stores domain events until they are relayed.
type OutboxRepository interface {
	// Add stores a message in the caller's transaction.
	Add(ctx context.Context, message *outbox.Message) error

	// ListUnpublished returns up to limit unpublished messages, oldest first,
	// skipping rows locked by a concurrent relay.
	ListUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error)

	// Update persists the delivery state (publishedAt, retryCount, lastError).
	Update(ctx context.Context, message *outbox.Message) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, message *outbox.Message) error
}
