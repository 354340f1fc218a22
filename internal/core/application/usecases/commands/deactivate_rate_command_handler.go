package commands

import (
	"context"
)

type DeactivateRateCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeactivateRateCommandHandler(uowFactory CatalogUoWFactory) DeactivateRateCommandHandler {
	return DeactivateRateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deactivates the rate after checking that the actor owns its zone.
func (h *DeactivateRateCommandHandler) Handle(ctx context.Context, cmd DeactivateRateCommand) error {
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

	rateRepo := uow.RateRepository()
	r, err := rateRepo.Get(ctx, cmd.RateID())
	if err != nil {
		return err
	}

	if _, err = loadOwnedZone(ctx, uow.ZoneRepository(), cmd.ActorForwarderID(), r.ZoneID()); err != nil {
		return err
	}

	if !r.IsActive() {
		return uow.Commit(ctx)
	}

	r.Deactivate()
	if err = rateRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
