package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetStaffDailyStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetStaffDailyStatsQueryHandler(db *gorm.DB) GetStaffDailyStatsQueryHandler {
	return GetStaffDailyStatsQueryHandler{db: db}
}

// Handle reads staff_daily_stats as last written by the roll-up job; activity
// newer than the last run is not included.
func (h GetStaffDailyStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStaffDailyStatsQuery,
) ([]GetStaffDailyStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetStaffDailyStatsQueryResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT day, staff_id, scans
		FROM staff_daily_stats
		WHERE warehouse_id = ? AND day BETWEEN ? AND ?
		ORDER BY day, staff_id
	`, query.WarehouseID().Bytes(), query.From(), query.To()).Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	for i := range stats {
		stats[i].Day = utcDay(stats[i].Day)
	}

	return stats, nil
}
