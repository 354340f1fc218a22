package commands

import (
	"errors"
	"math"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a parcel a customer is sending through a
// forwarder's warehouse.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, forwarderID, warehouseID, 3.5, 120, "DHL")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	forwarderID   kernel.UUID
	warehouseID   kernel.UUID
	weightKg      float64
	declaredValue float64
	courier       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers, a positive weight, a
// non-negative declared value and a courier name.
func NewCreateOrderCommand(
	orderID, customerID, forwarderID, warehouseID kernel.UUID,
	weightKg, declaredValue float64,
	courier string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		forwarderID.Validate(),
		warehouseID.Validate(),
		cmd.setWeight(weightKg),
		cmd.setDeclaredValue(declaredValue),
		cmd.setCourier(courier),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customerID = customerID
	cmd.forwarderID = forwarderID
	cmd.warehouseID = warehouseID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID  { return c.customerID }
func (c CreateOrderCommand) ForwarderID() kernel.UUID { return c.forwarderID }
func (c CreateOrderCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c CreateOrderCommand) WeightKg() float64        { return c.weightKg }
func (c CreateOrderCommand) DeclaredValue() float64   { return c.declaredValue }
func (c CreateOrderCommand) Courier() string          { return c.courier }

func (c *CreateOrderCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, "> 0", math.MaxFloat64)
	}
	c.weightKg = weightKg
	return nil
}

func (c *CreateOrderCommand) setDeclaredValue(value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsOutOfRangeError("declaredValue", value, 0, math.MaxFloat64)
	}
	c.declaredValue = value
	return nil
}

func (c *CreateOrderCommand) setCourier(courier string) error {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return errs.NewValueIsRequiredError("courier")
	}
	c.courier = courier
	return nil
}
