package commands

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrRollupStaffActivityCommandIsNotConstructed = errors.New(
	"RollupStaffActivityCommand must be created via NewRollupStaffActivityCommand constructor",
)

// RollupStaffActivityCommand recounts staff_daily_stats for every UTC day
// between from and to, both inclusive.
type RollupStaffActivityCommand struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

func NewRollupStaffActivityCommand(from, to time.Time) (RollupStaffActivityCommand, error) {
	var fromErr, toErr error
	if from.IsZero() {
		fromErr = errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		toErr = errs.NewValueIsRequiredError("to")
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return RollupStaffActivityCommand{}, err
	}
	if to.Before(from) {
		return RollupStaffActivityCommand{}, errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}

	return RollupStaffActivityCommand{
		from:  from.UTC(),
		to:    to.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RollupStaffActivityCommand) Validate() error {
	return c.guard.Validate(ErrRollupStaffActivityCommandIsNotConstructed)
}

func (c RollupStaffActivityCommand) From() time.Time { return c.from }
func (c RollupStaffActivityCommand) To() time.Time   { return c.to }
