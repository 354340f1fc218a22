// Package forwarderrepo persists forwarder aggregates and their consolidation settings.
package forwarderrepo

import (
	"time"

	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ForwarderDTO is the "forwarders" row. Consolidation settings are embedded columns.
type ForwarderDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Consolidation ConsolidationDTO `gorm:"embedded;embeddedPrefix:consolidation_"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ForwarderDTO) TableName() string {
	return "forwarders"
}

// ConsolidationDTO holds the consolidation_* columns.
type ConsolidationDTO struct {
	Enabled           bool    `gorm:"not null"`
	DiscountPercent   float64 `gorm:"type:numeric(5,2);not null"`
	HoldingPeriodDays int     `gorm:"type:int;not null"`
}

func fromDomain(aggregate *forwarder.Forwarder) ForwarderDTO {
	c := aggregate.Consolidation()
	return ForwarderDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Consolidation: ConsolidationDTO{
			Enabled:           c.Enabled(),
			DiscountPercent:   c.DiscountPercent(),
			HoldingPeriodDays: c.HoldingPeriodDays(),
		},
	}
}

func toDomain(dto ForwarderDTO) (*forwarder.Forwarder, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	consolidation, err := forwarder.NewConsolidation(
		dto.Consolidation.Enabled,
		dto.Consolidation.DiscountPercent,
		dto.Consolidation.HoldingPeriodDays,
	)
	if err != nil {
		return nil, err
	}

	return forwarder.RestoreForwarder(id, dto.Name, consolidation)
}
