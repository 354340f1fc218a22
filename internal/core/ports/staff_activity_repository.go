package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/staff"
)

// StaffActivityRepository stores raw staff activity and maintains the daily roll-up.
type StaffActivityRepository interface {
	// Append stores one activity record.
	Append(ctx context.Context, activity *staff.Activity) error

	// RollupDays recomputes staff_daily_stats for every UTC day in [from, to]
	// from the raw activity and returns the number of rows written.
	RollupDays(ctx context.Context, from, to time.Time) (int64, error)
}
