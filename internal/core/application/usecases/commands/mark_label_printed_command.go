package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrMarkLabelPrintedCommandIsNotConstructed = errors.New(
	"MarkLabelPrintedCommand must be created via NewMarkLabelPrintedCommand constructor",
)

type MarkLabelPrintedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkLabelPrintedCommand(orderID kernel.UUID) (MarkLabelPrintedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkLabelPrintedCommand{}, err
	}

	return MarkLabelPrintedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkLabelPrintedCommand) Validate() error {
	return c.guard.Validate(ErrMarkLabelPrintedCommandIsNotConstructed)
}

func (c MarkLabelPrintedCommand) OrderID() kernel.UUID {
	return c.orderID
}
