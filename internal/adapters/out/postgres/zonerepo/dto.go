// Package zonerepo persists shipping zones. Countries are stored as a
// PostgreSQL text[] column.
package zonerepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ZoneDTO is the "shipping_zones" row.
type ZoneDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ForwarderID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Countries   pq.StringArray `gorm:"type:text[];not null"`
	Active      bool           `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ZoneDTO) TableName() string {
	return "shipping_zones"
}

func fromDomain(aggregate *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:          aggregate.ID().Bytes(),
		ForwarderID: aggregate.ForwarderID().Bytes(),
		Name:        aggregate.Name(),
		Countries:   pq.StringArray(aggregate.Countries().Strings()),
		Active:      aggregate.IsActive(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	forwarderID, err := kernel.UUIDFromGoogle(dto.ForwarderID)
	if err != nil {
		return nil, err
	}
	countries, err := kernel.NewCountrySet(dto.Countries)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, forwarderID, dto.Name, countries, dto.Active)
}
