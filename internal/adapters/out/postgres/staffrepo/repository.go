package staffrepo

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/staff"

	"gorm.io/gorm"
)

const rollupSQL = `
INSERT INTO staff_daily_stats (day, staff_id, warehouse_id, scans, updated_at)
SELECT (created_at AT TIME ZONE 'UTC')::date, staff_id, warehouse_id, COUNT(*), NOW()
FROM staff_activities
WHERE created_at >= ? AND created_at < ?
GROUP BY 1, 2, 3
ON CONFLICT (day, staff_id, warehouse_id)
DO UPDATE SET scans = EXCLUDED.scans, updated_at = EXCLUDED.updated_at`

// GormStaffActivityRepository implements ports.StaffActivityRepository using GORM.
type GormStaffActivityRepository struct {
	db *gorm.DB
}

func NewGormStaffActivityRepository(db *gorm.DB) *GormStaffActivityRepository {
	return &GormStaffActivityRepository{db: db}
}

// Append inserts one activity record.
func (r *GormStaffActivityRepository) Append(ctx context.Context, activity *staff.Activity) error {
	if err := activity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(activity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// RollupDays recounts every UTC day touched by [from, to]. Counts are
// recomputed from scratch, so running it twice gives the same result.
func (r *GormStaffActivityRepository) RollupDays(ctx context.Context, from, to time.Time) (int64, error) {
	start := truncateDay(from)
	end := truncateDay(to).AddDate(0, 0, 1)

	result := r.db.WithContext(ctx).Exec(rollupSQL, start, end)
	return result.RowsAffected, result.Error
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
