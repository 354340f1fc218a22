package forwarder

import (
	"errors"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

const (
	// MinHoldingPeriodDays is the shortest holding period an enabled consolidation accepts.
	MinHoldingPeriodDays = 1
	// MaxHoldingPeriodDays caps how long parcels may wait for consolidation.
	MaxHoldingPeriodDays = 60

	minDiscountPercent = 0.0
	maxDiscountPercent = 100.0
)

// ErrConsolidationIsNotConstructed is returned for a zero-value Consolidation.
var ErrConsolidationIsNotConstructed = errors.New("Consolidation must be created via NewConsolidation or DisabledConsolidation")

// Consolidation describes a forwarder's parcel consolidation offer.
//
// Example:
//
//	c, err := forwarder.NewConsolidation(true, 20, 7)
//	// parcels may be held 7 days and ship with a 20% discount
type Consolidation struct { //nolint:recvcheck //using for validation
	enabled           bool
	discountPercent   float64
	holdingPeriodDays int
	guard             guard.ConstructorGuard
}

// NewConsolidation validates and builds consolidation settings.
// The holding period is only checked when consolidation is enabled.
func NewConsolidation(enabled bool, discountPercent float64, holdingPeriodDays int) (Consolidation, error) {
	c := Consolidation{
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setDiscountPercent(discountPercent),
		c.setHoldingPeriodDays(holdingPeriodDays),
	); err != nil {
		return Consolidation{}, err
	}

	return c, nil
}

// DisabledConsolidation is the default for newly registered forwarders.
func DisabledConsolidation() Consolidation {
	return Consolidation{guard: guard.NewConstructorGuard()}
}

// Validate ensures the value was built by a constructor.
func (c Consolidation) Validate() error {
	return c.guard.Validate(ErrConsolidationIsNotConstructed)
}

// Enabled reports whether the forwarder consolidates parcels.
func (c Consolidation) Enabled() bool {
	return c.enabled
}

// DiscountPercent returns the configured discount, 0..100.
func (c Consolidation) DiscountPercent() float64 {
	return c.discountPercent
}

// HoldingPeriodDays returns how long parcels are held before shipping.
func (c Consolidation) HoldingPeriodDays() int {
	return c.holdingPeriodDays
}

// Discount returns the percentage to apply to a consolidated shipment.
// ok is false when consolidation is disabled or carries no discount.
func (c Consolidation) Discount() (percent float64, ok bool) {
	if !c.enabled || c.discountPercent <= 0 {
		return 0, false
	}
	return c.discountPercent, true
}

func (c *Consolidation) setDiscountPercent(percent float64) error {
	if percent < minDiscountPercent || percent > maxDiscountPercent {
		return errs.NewValueIsOutOfRangeError("discountPercent", percent, minDiscountPercent, maxDiscountPercent)
	}
	c.discountPercent = percent
	return nil
}

func (c *Consolidation) setHoldingPeriodDays(days int) error {
	if !c.enabled {
		if days < 0 {
			return errs.NewValueIsOutOfRangeError("holdingPeriodDays", days, 0, MaxHoldingPeriodDays)
		}
		c.holdingPeriodDays = days
		return nil
	}

	if days < MinHoldingPeriodDays || days > MaxHoldingPeriodDays {
		return errs.NewValueIsOutOfRangeError("holdingPeriodDays", days, MinHoldingPeriodDays, MaxHoldingPeriodDays)
	}
	c.holdingPeriodDays = days
	return nil
}
