package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new order in the Incoming status together
// with its opening history entry, attributed to the customer.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ForwarderID(),
		cmd.WarehouseID(),
		cmd.WeightKg(),
		cmd.DeclaredValue(),
		cmd.Courier(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	customer, err := order.NewActor(cmd.CustomerID().String(), order.ActorCustomer)
	if err != nil {
		return err
	}
	opening, err := o.OpeningEntry(customer)
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.OrderHistoryRepository().Append(ctx, opening); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
