package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/zone"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// loadOwnedZone returns the zone when actorForwarderID owns it and an
// UnauthorizedError otherwise.
func loadOwnedZone(ctx context.Context, repo ports.ZoneRepository, actorForwarderID, zoneID kernel.UUID) (*zone.Zone, error) {
	z, err := repo.Get(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if !z.IsOwnedBy(actorForwarderID) {
		return nil, errs.NewUnauthorizedError(actorForwarderID.String(), "zone", zoneID)
	}
	return z, nil
}
