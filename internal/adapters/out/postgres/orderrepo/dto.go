// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as one of the eight status strings; legacy values are
// normalized by the 0002 migration.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ForwarderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	WarehouseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	WeightKg      float64   `gorm:"type:numeric(10,3);not null"`
	DeclaredValue float64   `gorm:"type:numeric(12,2);not null"`
	Courier       string    `gorm:"type:varchar(100);not null"`
	Status        string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	ReceivedAt    *time.Time
	PackedAt      *time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	LabelPrinted  bool `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		ForwarderID:   aggregate.ForwarderID().Bytes(),
		WarehouseID:   aggregate.WarehouseID().Bytes(),
		WeightKg:      aggregate.WeightKg(),
		DeclaredValue: aggregate.DeclaredValue(),
		Courier:       aggregate.Courier(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		ReceivedAt:    aggregate.ReceivedAt(),
		PackedAt:      aggregate.PackedAt(),
		ShippedAt:     aggregate.ShippedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		LabelPrinted:  aggregate.IsLabelPrinted(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CustomerID, dto.ForwarderID, dto.WarehouseID} {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            ids[0],
		CustomerID:    ids[1],
		ForwarderID:   ids[2],
		WarehouseID:   ids[3],
		WeightKg:      dto.WeightKg,
		DeclaredValue: dto.DeclaredValue,
		Courier:       dto.Courier,
		Status:        order.Status(dto.Status),
		CreatedAt:     dto.CreatedAt,
		ReceivedAt:    dto.ReceivedAt,
		PackedAt:      dto.PackedAt,
		ShippedAt:     dto.ShippedAt,
		DeliveredAt:   dto.DeliveredAt,
		LabelPrinted:  dto.LabelPrinted,
	})
}
