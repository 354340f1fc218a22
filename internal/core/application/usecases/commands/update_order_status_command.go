package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// ScanInput is the optional barcode scan recorded with a status change.
type ScanInput struct {
	Barcode  string
	Location string
	Device   string
}

// UpdateOrderStatusCommand moves an order through the status pipeline.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, "packed", "staff-17", "staff", "", &ScanInput{
//	    Barcode: "JD0142", Location: "A-12", Device: "zebra-3",
//	})
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     order.Actor
	notes     string
	scan      *order.ScanData

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus, actorID, actorType, notes string,
	scan *ScanInput,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	status, statusErr := order.ParseStatus(newStatus)
	cmd.newStatus = status

	var actorErr error
	t, err := order.ParseActorType(actorType)
	if err != nil {
		actorErr = err
	} else {
		cmd.actor, actorErr = order.NewActor(actorID, t)
	}

	var scanErr error
	if scan != nil {
		s, err := order.NewScanData(scan.Barcode, scan.Location, scan.Device)
		if err != nil {
			scanErr = err
		} else {
			cmd.scan = &s
		}
	}

	if err := errors.Join(orderID.Validate(), statusErr, actorErr, scanErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }
func (c UpdateOrderStatusCommand) Actor() order.Actor      { return c.actor }
func (c UpdateOrderStatusCommand) Notes() string           { return c.notes }

func (c UpdateOrderStatusCommand) Scan() *order.ScanData {
	if c.scan == nil {
		return nil
	}
	s := *c.scan
	return &s
}
