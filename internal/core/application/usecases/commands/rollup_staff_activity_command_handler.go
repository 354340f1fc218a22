package commands

import (
	"context"
)

type RollupStaffActivityCommandHandler struct {
	uowFactory StaffActivityUoWFactory
}

func NewRollupStaffActivityCommandHandler(uowFactory StaffActivityUoWFactory) RollupStaffActivityCommandHandler {
	return RollupStaffActivityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of daily stat rows written.
func (h *RollupStaffActivityCommandHandler) Handle(ctx context.Context, cmd RollupStaffActivityCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rows, err := uow.StaffActivityRepository().RollupDays(ctx, cmd.From(), cmd.To())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return rows, nil
}
