package commands

import (
	"context"

	"forwarding/internal/core/domain/model/zone"
	"forwarding/internal/core/domain/services"
)

// CreateZoneCommandHandler stores a zone after checking it against the
// forwarder's active zones: no shared country, no duplicate name.
type CreateZoneCommandHandler struct {
	uowFactory CatalogUoWFactory
	checker    services.ZoneConflictChecker
}

func NewCreateZoneCommandHandler(uowFactory CatalogUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewZoneConflictChecker(),
	}
}

func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidate, err := zone.NewZone(cmd.ZoneID(), cmd.ForwarderID(), cmd.Name(), cmd.Countries())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ZoneRepository()
	siblings, err := repo.ListActiveByForwarder(ctx, cmd.ForwarderID())
	if err != nil {
		return err
	}

	if err = h.checker.Check(candidate, siblings); err != nil {
		return err
	}

	if err = repo.Add(ctx, candidate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
