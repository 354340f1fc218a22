package queries

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// MaxStatsRangeDays bounds the dashboard query.
const MaxStatsRangeDays = 366

var ErrGetStaffDailyStatsQueryIsNotConstructed = errors.New(
	"GetStaffDailyStatsQuery must be created via NewGetStaffDailyStatsQuery constructor",
)

// GetStaffDailyStatsQuery reads the rolled-up scan counts of one warehouse for
// the UTC days from..to, both inclusive.
type GetStaffDailyStatsQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	from        time.Time
	to          time.Time

	guard guard.ConstructorGuard
}

func NewGetStaffDailyStatsQuery(warehouseID kernel.UUID, from, to time.Time) (GetStaffDailyStatsQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetStaffDailyStatsQuery{}, err
	}

	from, to = utcDay(from), utcDay(to)
	if to.Before(from) {
		return GetStaffDailyStatsQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%s is before %s", to.Format(time.DateOnly), from.Format(time.DateOnly)))
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > MaxStatsRangeDays {
		return GetStaffDailyStatsQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxStatsRangeDays)
	}

	return GetStaffDailyStatsQuery{
		warehouseID: warehouseID,
		from:        from,
		to:          to,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetStaffDailyStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffDailyStatsQueryIsNotConstructed)
}

func (q GetStaffDailyStatsQuery) WarehouseID() kernel.UUID { return q.warehouseID }
func (q GetStaffDailyStatsQuery) From() time.Time          { return q.from }
func (q GetStaffDailyStatsQuery) To() time.Time            { return q.to }

type GetStaffDailyStatsQueryResponse struct {
	Day     time.Time
	StaffID string
	Scans   int64
}

func utcDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
