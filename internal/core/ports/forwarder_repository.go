// Package ports defines the contracts between the forwarding core and its
// infrastructure: repositories for every aggregate, the unit of work that
// binds them to one transaction, and the event publisher used by the outbox relay.
package ports

import (
	"context"

	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"
)

// ForwarderRepository defines the persistence contract for forwarder aggregates.
type ForwarderRepository interface {
	// Add persists a new forwarder.
	Add(ctx context.Context, aggregate *forwarder.Forwarder) error

	// Update persists name and consolidation changes.
	Update(ctx context.Context, aggregate *forwarder.Forwarder) error

	// Get returns the forwarder or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*forwarder.Forwarder, error)
}
