// Package historyrepo persists order status history. The table is append-only:
// the repository inserts and reads, nothing else.
package historyrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryEntryDTO is one "order_status_history" row. PreviousStatus is empty
// for the entry written at order creation.
type HistoryEntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index:idx_history_order_created,priority:1"`
	PreviousStatus string    `gorm:"type:varchar(32);not null"`
	NewStatus      string    `gorm:"type:varchar(32);not null"`
	ActorID        string    `gorm:"type:varchar(255);not null"`
	ActorType      string    `gorm:"type:varchar(16);not null"`
	Notes          string    `gorm:"type:text;not null"`
	Scan           ScanDTO   `gorm:"embedded;embeddedPrefix:scan_"`
	CreatedAt      time.Time `gorm:"not null;index:idx_history_order_created,priority:2"`
}

func (HistoryEntryDTO) TableName() string {
	return "order_status_history"
}

// ScanDTO holds the scan_* columns; all NULL when no scan was recorded.
type ScanDTO struct {
	Barcode  *string `gorm:"type:varchar(255)"`
	Location *string `gorm:"type:varchar(255)"`
	Device   *string `gorm:"type:varchar(255)"`
}

func fromDomain(entry *order.HistoryEntry) HistoryEntryDTO {
	dto := HistoryEntryDTO{
		ID:             entry.ID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		PreviousStatus: entry.PreviousStatus().String(),
		NewStatus:      entry.NewStatus().String(),
		ActorID:        entry.Actor().ID(),
		ActorType:      entry.Actor().Type().String(),
		Notes:          entry.Notes(),
		CreatedAt:      entry.CreatedAt(),
	}
	if scan := entry.Scan(); scan != nil {
		barcode, location, device := scan.Barcode(), scan.Location(), scan.Device()
		dto.Scan = ScanDTO{Barcode: &barcode, Location: &location, Device: &device}
	}
	return dto
}

func toDomain(dto HistoryEntryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	actor, err := order.NewActor(dto.ActorID, order.ActorType(dto.ActorType))
	if err != nil {
		return nil, err
	}

	var scan *order.ScanData
	if dto.Scan.Barcode != nil {
		s, scanErr := order.NewScanData(*dto.Scan.Barcode, deref(dto.Scan.Location), deref(dto.Scan.Device))
		if scanErr != nil {
			return nil, scanErr
		}
		scan = &s
	}

	return order.NewHistoryEntry(id, orderID, order.Status(dto.PreviousStatus), order.Status(dto.NewStatus),
		actor, dto.Notes, scan, dto.CreatedAt)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
