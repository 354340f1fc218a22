package commands

import (
	"context"

	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"
)

type UpdateZoneCountriesCommandHandler struct {
	uowFactory CatalogUoWFactory
	checker    services.ZoneConflictChecker
}

func NewUpdateZoneCountriesCommandHandler(uowFactory CatalogUoWFactory) UpdateZoneCountriesCommandHandler {
	return UpdateZoneCountriesCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewZoneConflictChecker(),
	}
}

// Handle replaces the zone's countries. The conflict check runs against the
// forwarder's other active zones; the zone itself is excluded.
func (h *UpdateZoneCountriesCommandHandler) Handle(ctx context.Context, cmd UpdateZoneCountriesCommand) error {
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

	repo := uow.ZoneRepository()
	z, err := loadOwnedZone(ctx, repo, cmd.ActorForwarderID(), cmd.ZoneID())
	if err != nil {
		return err
	}
	if !z.IsActive() {
		return errs.NewConflictError("zone", "zone "+z.Name()+" is inactive")
	}

	if err = z.ReplaceCountries(cmd.Countries()); err != nil {
		return err
	}

	siblings, err := repo.ListActiveByForwarder(ctx, z.ForwarderID())
	if err != nil {
		return err
	}
	if err = h.checker.Check(z, siblings); err != nil {
		return err
	}

	if err = repo.Update(ctx, z); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
