package commands

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/pkg/errs"
)

// CreateRateCommandHandler stores a new rate on a zone the actor owns.
// Only one active rate per courier and service type may exist in a zone.
type CreateRateCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateRateCommandHandler(uowFactory CatalogUoWFactory) CreateRateCommandHandler {
	return CreateRateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateRateCommandHandler) Handle(ctx context.Context, cmd CreateRateCommand) error {
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

	z, err := loadOwnedZone(ctx, uow.ZoneRepository(), cmd.ActorForwarderID(), cmd.ZoneID())
	if err != nil {
		return err
	}
	if !z.IsActive() {
		return errs.NewConflictError("zone", "zone "+z.Name()+" is inactive")
	}

	rateRepo := uow.RateRepository()
	existing, err := rateRepo.ListActiveByZone(ctx, z.ID())
	if err != nil {
		return err
	}
	for _, r := range existing {
		if r.Matches(cmd.Courier(), cmd.ServiceType()) {
			return errs.NewConflictError("rate", fmt.Sprintf(
				"zone %q already has an active %s rate for %s", z.Name(), cmd.ServiceType(), r.Courier()))
		}
	}

	r, err := rate.NewRate(cmd.RateID(), z.ID(), cmd.Courier(), cmd.ServiceType(), cmd.Slabs(), cmd.Fees(), cmd.Transit())
	if err != nil {
		return err
	}

	if err = rateRepo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
