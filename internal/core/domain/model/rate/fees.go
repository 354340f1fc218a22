package rate

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrFeesAreNotConstructed is returned for a zero-value Fees.
var ErrFeesAreNotConstructed = errors.New("Fees must be created via NewFees constructor")

// Fees are charges added on top of the slab's base cost.
type Fees struct { //nolint:recvcheck //using for validation
	handling      float64
	insurance     *float64
	fuelSurcharge *float64
	guard         guard.ConstructorGuard
}

// NewFees validates that every fee is non-negative.
func NewFees(handling float64, insurance, fuelSurcharge *float64) (Fees, error) {
	f := Fees{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		nonNegative("handlingFee", &handling),
		nonNegative("insuranceFee", insurance),
		nonNegative("fuelSurcharge", fuelSurcharge),
	); err != nil {
		return Fees{}, err
	}

	f.handling = handling
	f.insurance = copyFloat(insurance)
	f.fuelSurcharge = copyFloat(fuelSurcharge)
	return f, nil
}

func (f Fees) Validate() error {
	return f.guard.Validate(ErrFeesAreNotConstructed)
}

func (f Fees) Handling() float64 {
	return f.handling
}

func (f Fees) Insurance() (float64, bool) {
	if f.insurance == nil {
		return 0, false
	}
	return *f.insurance, true
}

func (f Fees) FuelSurcharge() (float64, bool) {
	if f.fuelSurcharge == nil {
		return 0, false
	}
	return *f.fuelSurcharge, true
}

// Total sums handling and whichever optional fees are set.
func (f Fees) Total() float64 {
	total := f.handling
	if f.insurance != nil {
		total += *f.insurance
	}
	if f.fuelSurcharge != nil {
		total += *f.fuelSurcharge
	}
	return total
}

func nonNegative(param string, v *float64) error {
	if v != nil && *v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is negative", *v))
	}
	return nil
}
