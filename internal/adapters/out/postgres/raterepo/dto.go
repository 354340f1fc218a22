// Package raterepo persists shipping rates with their weight slabs and fees.
package raterepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"

	"github.com/google/uuid"
)

// RateDTO is the "shipping_rates" row. Fees and transit time are inline columns.
type RateDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ZoneID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Courier        string          `gorm:"type:varchar(100);not null"`
	ServiceType    string          `gorm:"type:varchar(32);not null"`
	HandlingFee    float64         `gorm:"type:numeric(12,4);not null"`
	InsuranceFee   *float64        `gorm:"type:numeric(12,4)"`
	FuelSurcharge  *float64        `gorm:"type:numeric(12,4)"`
	TransitMinDays int             `gorm:"type:int;not null"`
	TransitMaxDays int             `gorm:"type:int;not null"`
	Active         bool            `gorm:"not null;index"`
	Slabs          []WeightSlabDTO `gorm:"foreignKey:RateID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (RateDTO) TableName() string {
	return "shipping_rates"
}

// WeightSlabDTO is one "weight_slabs" row. Position keeps the configured order.
type WeightSlabDTO struct {
	RateID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;primaryKey"`
	MinWeight float64   `gorm:"type:numeric(10,3);not null"`
	MaxWeight *float64  `gorm:"type:numeric(10,3)"`
	FlatRate  *float64  `gorm:"type:numeric(12,4)"`
	RatePerKg *float64  `gorm:"type:numeric(12,4)"`
	Label     string    `gorm:"type:varchar(100);not null"`
}

func (WeightSlabDTO) TableName() string {
	return "weight_slabs"
}

func fromDomain(aggregate *rate.Rate) RateDTO {
	rateID := aggregate.ID().Bytes()
	fees := aggregate.Fees()

	slabs := make([]WeightSlabDTO, 0, len(aggregate.Slabs()))
	for i, s := range aggregate.Slabs() {
		dto := WeightSlabDTO{
			RateID:    rateID,
			Position:  i,
			MinWeight: s.MinWeight(),
			Label:     s.Label(),
		}
		if v, ok := s.MaxWeight(); ok {
			dto.MaxWeight = &v
		}
		if v, ok := s.FlatRate(); ok {
			dto.FlatRate = &v
		}
		if v, ok := s.RatePerKg(); ok {
			dto.RatePerKg = &v
		}
		slabs = append(slabs, dto)
	}

	dto := RateDTO{
		ID:             rateID,
		ZoneID:         aggregate.ZoneID().Bytes(),
		Courier:        aggregate.Courier(),
		ServiceType:    aggregate.ServiceType().String(),
		HandlingFee:    fees.Handling(),
		TransitMinDays: aggregate.Transit().MinDays(),
		TransitMaxDays: aggregate.Transit().MaxDays(),
		Active:         aggregate.IsActive(),
		Slabs:          slabs,
	}
	if v, ok := fees.Insurance(); ok {
		dto.InsuranceFee = &v
	}
	if v, ok := fees.FuelSurcharge(); ok {
		dto.FuelSurcharge = &v
	}
	return dto
}

// toDomain restores the rate without re-checking slab coverage, so rates
// written before coverage validation existed still load.
func toDomain(dto RateDTO) (*rate.Rate, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromGoogle(dto.ZoneID)
	if err != nil {
		return nil, err
	}

	slabs := make([]rate.WeightSlab, 0, len(dto.Slabs))
	for _, s := range dto.Slabs {
		slab, slabErr := rate.RestoreWeightSlab(s.MinWeight, s.MaxWeight, s.FlatRate, s.RatePerKg, s.Label)
		if slabErr != nil {
			return nil, slabErr
		}
		slabs = append(slabs, slab)
	}

	fees, err := rate.NewFees(dto.HandlingFee, dto.InsuranceFee, dto.FuelSurcharge)
	if err != nil {
		return nil, err
	}
	transit, err := rate.NewTransitTime(dto.TransitMinDays, dto.TransitMaxDays)
	if err != nil {
		return nil, err
	}

	return rate.RestoreRate(id, zoneID, dto.Courier, rate.ServiceType(dto.ServiceType), slabs, fees, transit, dto.Active)
}
