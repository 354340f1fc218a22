package order

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
)

// StatusChangedEventType is the event type carried in the outbox and on the wire.
const StatusChangedEventType = "order.status_changed"

// StatusChanged is raised by Order.ChangeStatus.
type StatusChanged struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	ForwarderID    string    `json:"forwarderId"`
	WarehouseID    string    `json:"warehouseId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	ActorID        string    `json:"actorId"`
	ActorType      string    `json:"actorType"`
	OccurredAt     time.Time `json:"occurredAt"`
}

var _ kernel.DomainEvent = StatusChanged{}

func (e StatusChanged) EventID() string       { return e.ID }
func (e StatusChanged) EventType() string     { return StatusChangedEventType }
func (e StatusChanged) AggregateID() string   { return e.OrderID }
func (e StatusChanged) OccurredOn() time.Time { return e.OccurredAt }
