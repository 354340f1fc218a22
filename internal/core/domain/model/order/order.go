package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a parcel a customer ships through a forwarder. It is the aggregate
// root for the status pipeline; history entries are produced by it but stored
// separately.
//
// Order follows these invariants:
//   - Customer, forwarder and warehouse identifiers are valid UUIDs
//   - Declared weight is positive and declared value is not negative
//   - Status changes follow the transition policy in ValidateTransition
//   - A stage timestamp, once set, is never overwritten
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	forwarderID kernel.UUID
	warehouseID kernel.UUID

	weightKg      float64
	declaredValue float64
	courier       string

	status    Status
	createdAt time.Time

	receivedAt  *time.Time
	packedAt    *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time

	labelPrinted bool

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	ForwarderID   kernel.UUID
	WarehouseID   kernel.UUID
	WeightKg      float64
	DeclaredValue float64
	Courier       string
	Status        Status
	CreatedAt     time.Time
	ReceivedAt    *time.Time
	PackedAt      *time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	LabelPrinted  bool
}

// StatusChange is the input of Order.ChangeStatus.
type StatusChange struct {
	NewStatus Status
	Actor     Actor
	Notes     string
	Scan      *ScanData
}

// NewOrder creates an order in the Incoming status.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, forwarderID, warehouseID, 3.5, 120, "DHL", time.Now())
func NewOrder(
	id, customerID, forwarderID, warehouseID kernel.UUID,
	weightKg, declaredValue float64,
	courier string,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(Snapshot{
		ID:            id,
		CustomerID:    customerID,
		ForwarderID:   forwarderID,
		WarehouseID:   warehouseID,
		WeightKg:      weightKg,
		DeclaredValue: declaredValue,
		Courier:       courier,
		Status:        Incoming,
		CreatedAt:     createdAt,
	})
}

// RestoreOrder rebuilds an order from persistence. Legacy statuses are accepted.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:    s.CreatedAt,
		receivedAt:   copyTime(s.ReceivedAt),
		packedAt:     copyTime(s.PackedAt),
		shippedAt:    copyTime(s.ShippedAt),
		deliveredAt:  copyTime(s.DeliveredAt),
		labelPrinted: s.LabelPrinted,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&o.id, s.ID),
		setUUID(&o.customerID, s.CustomerID),
		setUUID(&o.forwarderID, s.ForwarderID),
		setUUID(&o.warehouseID, s.WarehouseID),
		o.setWeight(s.WeightKg),
		o.setDeclaredValue(s.DeclaredValue),
		o.setCourier(s.Courier),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID          { return o.id }
func (o *Order) CustomerID() kernel.UUID  { return o.customerID }
func (o *Order) ForwarderID() kernel.UUID { return o.forwarderID }
func (o *Order) WarehouseID() kernel.UUID { return o.warehouseID }
func (o *Order) WeightKg() float64        { return o.weightKg }
func (o *Order) DeclaredValue() float64   { return o.declaredValue }
func (o *Order) Courier() string          { return o.courier }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) ReceivedAt() *time.Time   { return copyTime(o.receivedAt) }
func (o *Order) PackedAt() *time.Time     { return copyTime(o.packedAt) }
func (o *Order) ShippedAt() *time.Time    { return copyTime(o.shippedAt) }
func (o *Order) DeliveredAt() *time.Time  { return copyTime(o.deliveredAt) }
func (o *Order) IsLabelPrinted() bool     { return o.labelPrinted }

// OpeningEntry is the first history record of a freshly created order.
func (o *Order) OpeningEntry(actor Actor) (*HistoryEntry, error) {
	return NewHistoryEntry(kernel.NewUUID(), o.id, NoStatus, Incoming, actor, "", nil, o.createdAt)
}

// ChangeStatus moves the order to change.NewStatus and returns the history
// entry to persist. A StatusChanged event is recorded on success.
//
// Failures:
//   - UnauthorizedError when a forwarder actor does not own the order
//   - ErrStatusUnchanged, ErrBackwardTransition or ErrCorrectionNotesRequired
//     from the transition policy
func (o *Order) ChangeStatus(change StatusChange, now time.Time) (*HistoryEntry, error) {
	if err := change.Actor.Validate(); err != nil {
		return nil, err
	}

	actor := change.Actor
	if actor.Type() == ActorForwarder && !o.isOwnedBy(actor.ID()) {
		return nil, errs.NewUnauthorizedError(actor.ID(), "order", o.id)
	}

	if err := o.status.ValidateTransition(change.NewStatus, actor.Type(), change.Notes); err != nil {
		return nil, err
	}

	entry, err := NewHistoryEntry(kernel.NewUUID(), o.id, o.status, change.NewStatus, actor, change.Notes, change.Scan, now)
	if err != nil {
		return nil, err
	}

	previous := o.status
	o.status = change.NewStatus
	o.stampStage(change.NewStatus, now)
	o.events = append(o.events, StatusChanged{
		ID:             kernel.NewUUID().String(),
		OrderID:        o.id.String(),
		ForwarderID:    o.forwarderID.String(),
		WarehouseID:    o.warehouseID.String(),
		PreviousStatus: previous.String(),
		NewStatus:      change.NewStatus.String(),
		ActorID:        actor.ID(),
		ActorType:      actor.Type().String(),
		OccurredAt:     now,
	})

	return entry, nil
}

// MarkLabelPrinted flags the shipping label as printed. Repeated calls are no-ops.
func (o *Order) MarkLabelPrinted() {
	o.labelPrinted = true
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) isOwnedBy(forwarderID string) bool {
	id, err := kernel.UUIDFromString(forwarderID)
	return err == nil && id.IsEqual(o.forwarderID)
}

func (o *Order) stampStage(status Status, now time.Time) {
	var slot **time.Time
	switch status.Canonical() {
	case ArrivedAtWarehouse:
		slot = &o.receivedAt
	case Packed:
		slot = &o.packedAt
	case InTransit:
		slot = &o.shippedAt
	case Delivered:
		slot = &o.deliveredAt
	default:
		return
	}
	if *slot == nil {
		t := now
		*slot = &t
	}
}

func setUUID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func (o *Order) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setDeclaredValue(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%v is negative", value))
	}
	o.declaredValue = value
	return nil
}

func (o *Order) setCourier(courier string) error {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return errs.NewValueIsRequiredError("courier")
	}
	o.courier = courier
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
