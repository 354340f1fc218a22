package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for shipping zones.
type ZoneRepository interface {
	Add(ctx context.Context, aggregate *zone.Zone) error
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Get returns the zone or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// ListActiveByForwarder returns the forwarder's active zones ordered by name.
	// Used for conflict checks and rate resolution.
	ListActiveByForwarder(ctx context.Context, forwarderID kernel.UUID) ([]*zone.Zone, error)
}
