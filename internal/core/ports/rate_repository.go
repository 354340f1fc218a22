package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"
)

// RateRepository defines the persistence contract for shipping rates and their slabs.
type RateRepository interface {
	// Add persists a rate together with its weight slabs.
	Add(ctx context.Context, aggregate *rate.Rate) error

	// Update persists the active flag. Slabs and fees are immutable once created.
	Update(ctx context.Context, aggregate *rate.Rate) error

	// Get returns the rate or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*rate.Rate, error)

	// ListActiveByZone returns the zone's active rates with slabs in ascending order.
	ListActiveByZone(ctx context.Context, zoneID kernel.UUID) ([]*rate.Rate, error)
}
