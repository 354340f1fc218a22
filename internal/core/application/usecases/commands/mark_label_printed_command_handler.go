package commands

import (
	"context"
)

// MarkLabelPrintedCommandHandler flags an order's shipping label as printed.
// Printing twice is not an error.
type MarkLabelPrintedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkLabelPrintedCommandHandler(uowFactory OrderUoWFactory) MarkLabelPrintedCommandHandler {
	return MarkLabelPrintedCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *MarkLabelPrintedCommandHandler) Handle(ctx context.Context, cmd MarkLabelPrintedCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.MarkLabelPrinted()
	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
