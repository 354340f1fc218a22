package commands

import (
	"context"
)

// DeactivateZoneCommandHandler retires a zone together with its active rates.
// Nothing is deleted; inactive rows stay for history and are skipped by quotes.
type DeactivateZoneCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeactivateZoneCommandHandler(uowFactory CatalogUoWFactory) DeactivateZoneCommandHandler {
	return DeactivateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle is idempotent: deactivating an inactive zone only sweeps leftover active rates.
func (h *DeactivateZoneCommandHandler) Handle(ctx context.Context, cmd DeactivateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()
	z, err := loadOwnedZone(ctx, zoneRepo, cmd.ActorForwarderID(), cmd.ZoneID())
	if err != nil {
		return err
	}

	if z.IsActive() {
		z.Deactivate()
		if err = zoneRepo.Update(ctx, z); err != nil {
			return err
		}
	}

	rateRepo := uow.RateRepository()
	rates, err := rateRepo.ListActiveByZone(ctx, z.ID())
	if err != nil {
		return err
	}
	for _, r := range rates {
		r.Deactivate()
		if err = rateRepo.Update(ctx, r); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
