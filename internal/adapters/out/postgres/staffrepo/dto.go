// Package staffrepo persists raw staff activity and the daily roll-up read by dashboards.
package staffrepo

import (
	"time"

	"forwarding/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// ActivityDTO is one "staff_activities" row.
type ActivityDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID     string    `gorm:"type:varchar(255);not null;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Action      string    `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (ActivityDTO) TableName() string {
	return "staff_activities"
}

// DailyStatsDTO is one "staff_daily_stats" row, keyed by UTC day, staff member and warehouse.
type DailyStatsDTO struct {
	Day         time.Time `gorm:"type:date;primaryKey"`
	StaffID     string    `gorm:"type:varchar(255);primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Scans       int64     `gorm:"not null"`
	UpdatedAt   time.Time
}

func (DailyStatsDTO) TableName() string {
	return "staff_daily_stats"
}

func fromDomain(a *staff.Activity) ActivityDTO {
	return ActivityDTO{
		ID:          a.ID().Bytes(),
		StaffID:     a.StaffID(),
		OrderID:     a.OrderID().Bytes(),
		WarehouseID: a.WarehouseID().Bytes(),
		Action:      a.Action(),
		CreatedAt:   a.CreatedAt(),
	}
}
