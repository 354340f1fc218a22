package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, stage timestamps and the label flag.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier or returns an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderHistoryRepository is append-only: there is no update or delete path.
type OrderHistoryRepository interface {
	// Append stores one immutable history entry.
	Append(ctx context.Context, entry *order.HistoryEntry) error

	// ListByOrder returns the order's entries oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error)
}
