package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/model/staff"
)

// UpdateOrderStatusCommandHandler applies a status change in one transaction:
// the order row, its history entry, a staff activity for staff actors and,
// on commit, the StatusChanged event in the outbox.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	entry, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s -> %s", entry.PreviousStatus(), entry.NewStatus())
type UpdateOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(uowFactory StatusUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns the stored history entry so callers can report the transition.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.HistoryEntry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	entry, err := o.ChangeStatus(order.StatusChange{
		NewStatus: cmd.NewStatus(),
		Actor:     cmd.Actor(),
		Notes:     cmd.Notes(),
		Scan:      cmd.Scan(),
	}, now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.OrderHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if cmd.Actor().Type() == order.ActorStaff {
		activity, err := staff.NewActivity(
			kernel.NewUUID(),
			cmd.Actor().ID(),
			o.ID(),
			o.WarehouseID(),
			cmd.NewStatus().String(),
			now,
		)
		if err != nil {
			return nil, err
		}
		if err = uow.StaffActivityRepository().Append(ctx, activity); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
