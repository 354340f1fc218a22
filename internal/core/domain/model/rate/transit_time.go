package rate

import (
	"errors"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrTransitTimeIsNotConstructed is returned for a zero-value TransitTime.
var ErrTransitTimeIsNotConstructed = errors.New("TransitTime must be created via NewTransitTime constructor")

// TransitTime is the estimated delivery window in days, 0 <= min <= max.
type TransitTime struct { //nolint:recvcheck //using for validation
	minDays int
	maxDays int
	guard   guard.ConstructorGuard
}

func NewTransitTime(minDays, maxDays int) (TransitTime, error) {
	if minDays < 0 {
		return TransitTime{}, errs.NewValueIsOutOfRangeError("transitMinDays", minDays, 0, maxDays)
	}
	if maxDays < minDays {
		return TransitTime{}, errs.NewValueIsOutOfRangeError("transitMaxDays", maxDays, minDays, "unbounded")
	}
	return TransitTime{minDays: minDays, maxDays: maxDays, guard: guard.NewConstructorGuard()}, nil
}

func (t TransitTime) Validate() error {
	return t.guard.Validate(ErrTransitTimeIsNotConstructed)
}

func (t TransitTime) MinDays() int {
	return t.minDays
}

func (t TransitTime) MaxDays() int {
	return t.maxDays
}
