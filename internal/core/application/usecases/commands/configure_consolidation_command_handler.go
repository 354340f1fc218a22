package commands

import (
	"context"
)

type ConfigureConsolidationCommandHandler struct {
	uowFactory ForwarderUoWFactory
}

func NewConfigureConsolidationCommandHandler(uowFactory ForwarderUoWFactory) ConfigureConsolidationCommandHandler {
	return ConfigureConsolidationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the forwarder, swaps its consolidation settings and saves it.
func (h *ConfigureConsolidationCommandHandler) Handle(ctx context.Context, cmd ConfigureConsolidationCommand) error {
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

	repo := uow.ForwarderRepository()
	fw, err := repo.Get(ctx, cmd.ForwarderID())
	if err != nil {
		return err
	}

	if err = fw.ConfigureConsolidation(cmd.Consolidation()); err != nil {
		return err
	}

	if err = repo.Update(ctx, fw); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
