package commands

import (
	"context"

	"forwarding/internal/core/domain/model/forwarder"
)

type RegisterForwarderCommandHandler struct {
	uowFactory ForwarderUoWFactory
}

func NewRegisterForwarderCommandHandler(uowFactory ForwarderUoWFactory) RegisterForwarderCommandHandler {
	return RegisterForwarderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new forwarder. A reused identifier fails with a conflict.
func (h *RegisterForwarderCommandHandler) Handle(ctx context.Context, cmd RegisterForwarderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	fw, err := forwarder.NewForwarder(cmd.ForwarderID(), cmd.Name())
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

	if err = uow.ForwarderRepository().Add(ctx, fw); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
