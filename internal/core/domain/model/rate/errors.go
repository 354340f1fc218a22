package rate

import "forwarding/internal/pkg/errs"

var (
	// ErrNoWeightSlabConfigured is returned when no slab contains the requested weight.
	ErrNoWeightSlabConfigured = errs.NewObjectNotFoundError("weightSlab", "no weight slab configured")
	// ErrInvalidSlabConfiguration is returned when a slab carries neither a flat rate nor a per-kg rate.
	ErrInvalidSlabConfiguration = errs.NewValueIsInvalidError("invalid slab configuration")
	// ErrSlabsAreRequired is returned for a rate without slabs.
	ErrSlabsAreRequired = errs.NewValueIsRequiredError("slabs")
)
