package rate

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrWeightSlabIsNotConstructed is returned for a zero-value WeightSlab.
var ErrWeightSlabIsNotConstructed = errors.New("WeightSlab must be created via NewWeightSlab constructor")

// WeightSlab is one weight band of a rate. maxWeight == nil means open-ended.
type WeightSlab struct { //nolint:recvcheck //using for validation
	minWeight float64
	maxWeight *float64
	flatRate  *float64
	ratePerKg *float64
	label     string
	guard     guard.ConstructorGuard
}

// NewWeightSlab builds a slab priced with exactly one of flatRate or ratePerKg.
//
// Example:
//
//	maxKg, perKg := 5.0, 25.0
//	slab, err := rate.NewWeightSlab(1, &maxKg, nil, &perKg, "1-5kg")
func NewWeightSlab(minWeight float64, maxWeight, flatRate, ratePerKg *float64, label string) (WeightSlab, error) {
	s, err := RestoreWeightSlab(minWeight, maxWeight, flatRate, ratePerKg, label)
	if err != nil {
		return WeightSlab{}, err
	}

	if err := s.validatePricing(); err != nil {
		return WeightSlab{}, err
	}

	return s, nil
}

// RestoreWeightSlab rebuilds a slab from storage. Pricing is not checked here;
// a slab without a price fails later in BaseCost.
func RestoreWeightSlab(minWeight float64, maxWeight, flatRate, ratePerKg *float64, label string) (WeightSlab, error) {
	s := WeightSlab{
		label: label,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setBounds(minWeight, maxWeight),
		s.setPrices(flatRate, ratePerKg),
	); err != nil {
		return WeightSlab{}, err
	}

	return s, nil
}

// Validate ensures the slab was built by a constructor.
func (s WeightSlab) Validate() error {
	return s.guard.Validate(ErrWeightSlabIsNotConstructed)
}

func (s WeightSlab) MinWeight() float64 {
	return s.minWeight
}

// MaxWeight returns the upper bound and false for an open-ended slab.
func (s WeightSlab) MaxWeight() (float64, bool) {
	if s.maxWeight == nil {
		return 0, false
	}
	return *s.maxWeight, true
}

func (s WeightSlab) FlatRate() (float64, bool) {
	if s.flatRate == nil {
		return 0, false
	}
	return *s.flatRate, true
}

func (s WeightSlab) RatePerKg() (float64, bool) {
	if s.ratePerKg == nil {
		return 0, false
	}
	return *s.ratePerKg, true
}

func (s WeightSlab) Label() string {
	return s.label
}

// IsUnbounded reports whether the slab has no upper weight limit.
func (s WeightSlab) IsUnbounded() bool {
	return s.maxWeight == nil
}

// Contains reports whether weight lies within [min, max].
func (s WeightSlab) Contains(weight float64) bool {
	if weight < s.minWeight {
		return false
	}
	return s.maxWeight == nil || weight <= *s.maxWeight
}

// BaseCost prices weight with this slab: the flat rate if set, otherwise
// weight * ratePerKg.
func (s WeightSlab) BaseCost(weight float64) (float64, error) {
	if s.flatRate != nil {
		return *s.flatRate, nil
	}
	if s.ratePerKg != nil {
		return weight * *s.ratePerKg, nil
	}
	return 0, fmt.Errorf("%w: slab %q has neither a flat rate nor a per-kg rate", ErrInvalidSlabConfiguration, s.label)
}

func (s WeightSlab) validatePricing() error {
	if (s.flatRate == nil) == (s.ratePerKg == nil) {
		return errs.NewValueIsInvalidErrorWithCause("slab",
			fmt.Errorf("slab %q must set exactly one of flatRate or ratePerKg", s.label))
	}
	return nil
}

func (s *WeightSlab) setBounds(minWeight float64, maxWeight *float64) error {
	if minWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minWeight", fmt.Errorf("%v is negative", minWeight))
	}
	if maxWeight != nil && *maxWeight < minWeight {
		return errs.NewValueIsInvalidErrorWithCause("maxWeight",
			fmt.Errorf("%v is less than minWeight %v", *maxWeight, minWeight))
	}
	s.minWeight = minWeight
	s.maxWeight = copyFloat(maxWeight)
	return nil
}

func (s *WeightSlab) setPrices(flatRate, ratePerKg *float64) error {
	var errList []error
	if flatRate != nil && *flatRate < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("flatRate", fmt.Errorf("%v is negative", *flatRate)))
	}
	if ratePerKg != nil && *ratePerKg < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ratePerKg", fmt.Errorf("%v is negative", *ratePerKg)))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}
	s.flatRate = copyFloat(flatRate)
	s.ratePerKg = copyFloat(ratePerKg)
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// ValidateCoverage checks that slabs are non-empty, sorted by minimum weight,
// contiguous (each slab starts where the previous one ends), and that only the
// last slab is open-ended.
func ValidateCoverage(slabs []WeightSlab) error {
	if len(slabs) == 0 {
		return ErrSlabsAreRequired
	}

	for i, s := range slabs {
		if err := s.Validate(); err != nil {
			return err
		}
		if i == 0 {
			continue
		}

		prev := slabs[i-1]
		prevMax, bounded := prev.MaxWeight()
		if !bounded {
			return errs.NewValueIsInvalidErrorWithCause("slabs",
				fmt.Errorf("open-ended slab %q must be the last one", prev.label))
		}
		switch {
		case s.minWeight < prev.minWeight:
			return errs.NewValueIsInvalidErrorWithCause("slabs",
				fmt.Errorf("slab %q is not sorted by minimum weight", s.label))
		case s.minWeight < prevMax:
			return errs.NewValueIsInvalidErrorWithCause("slabs",
				fmt.Errorf("slab %q overlaps slab %q", s.label, prev.label))
		case s.minWeight > prevMax:
			return errs.NewValueIsInvalidErrorWithCause("slabs",
				fmt.Errorf("gap between slab %q and slab %q", prev.label, s.label))
		}
	}

	return nil
}

// SelectSlab returns the first slab containing weight, preferring the next
// slab when weight sits exactly on its minimum.
func SelectSlab(slabs []WeightSlab, weight float64) (WeightSlab, error) {
	for i, s := range slabs {
		if !s.Contains(weight) {
			continue
		}
		if i+1 < len(slabs) && slabs[i+1].minWeight == weight && slabs[i+1].Contains(weight) {
			continue
		}
		return s, nil
	}
	return WeightSlab{}, fmt.Errorf("%w: %v kg", ErrNoWeightSlabConfigured, weight)
}
