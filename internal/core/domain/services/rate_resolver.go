package services

import (
	"fmt"
	"math"
	"strings"

	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/core/domain/model/zone"
	"forwarding/internal/pkg/errs"
)

var (
	// ErrNoZoneConfigured is returned when no active zone of the forwarder contains the destination.
	ErrNoZoneConfigured = errs.NewObjectNotFoundError("zone", "no zone configured")
	// ErrNoRateConfigured is returned when the zone has no active rate for the courier and service type.
	ErrNoRateConfigured = errs.NewObjectNotFoundError("rate", "no rate configured")
)

// QuoteRequest describes the shipment to price.
type QuoteRequest struct {
	Destination  kernel.CountryCode
	Courier      string
	ServiceType  rate.ServiceType
	WeightKg     float64
	Consolidated bool
}

// FeeBreakdown itemizes a quote. Discount is the amount taken off, not the percentage.
type FeeBreakdown struct {
	Base          float64
	Handling      float64
	Insurance     float64
	FuelSurcharge float64
	Discount      float64
}

// Quote is the outcome of a successful rate resolution.
type Quote struct {
	ZoneName       string
	Courier        string
	ServiceType    rate.ServiceType
	SlabLabel      string
	BaseCost       float64
	TotalCost      float64
	TransitMinDays int
	TransitMaxDays int
	Breakdown      FeeBreakdown
}

// RateResolver prices shipments from a forwarder's zone and rate tables.
//
// Resolution steps:
//   - MatchZone: the single active zone whose countries contain the destination
//   - MatchRate: the active rate of that zone for the courier and service type
//   - Quote: slab selection, base cost, fees and consolidation discount
//
// Example usage:
//
//	resolver := services.NewRateResolver()
//	z, err := resolver.MatchZone(zones, req.Destination)
//	r, err := resolver.MatchRate(z, rates, req.Courier, req.ServiceType)
//	q, err := resolver.Quote(fw, z, r, req)
//	// q.TotalCost == 92.5 for 3.5kg at 25/kg plus a 5.0 handling fee
type RateResolver struct{}

func NewRateResolver() RateResolver {
	return RateResolver{}
}

// MatchZone returns the active zone containing destination. Two active zones
// containing it is a broken invariant and reported as a conflict.
func (RateResolver) MatchZone(zones []*zone.Zone, destination kernel.CountryCode) (*zone.Zone, error) {
	var found *zone.Zone
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
		if !z.Covers(destination) {
			continue
		}
		if found != nil {
			return nil, errs.NewConflictError("zone",
				fmt.Sprintf("%s is assigned to both zone %q and zone %q", destination, found.Name(), z.Name()))
		}
		found = z
	}

	if found == nil {
		return nil, fmt.Errorf("%w for destination %s", ErrNoZoneConfigured, destination)
	}
	return found, nil
}

// MatchRate returns the active rate of z for courier and serviceType.
func (RateResolver) MatchRate(z *zone.Zone, rates []*rate.Rate, courier string, serviceType rate.ServiceType) (*rate.Rate, error) {
	for _, r := range rates {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if r.IsActive() && r.ZoneID().IsEqual(z.ID()) && r.Matches(courier, serviceType) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w for zone %q, courier %s, service %s",
		ErrNoRateConfigured, z.Name(), strings.TrimSpace(courier), serviceType)
}

// Quote prices req with rate r of zone z.
//
//	total = base + handling + insurance + fuelSurcharge
//	total *= 1 - discount/100   (consolidated shipments with a discount only)
func (RateResolver) Quote(fw *forwarder.Forwarder, z *zone.Zone, r *rate.Rate, req QuoteRequest) (Quote, error) {
	if err := fw.Validate(); err != nil {
		return Quote{}, err
	}
	if req.WeightKg <= 0 || math.IsNaN(req.WeightKg) || math.IsInf(req.WeightKg, 0) {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", req.WeightKg))
	}

	slab, err := r.SelectSlab(req.WeightKg)
	if err != nil {
		return Quote{}, err
	}
	base, err := slab.BaseCost(req.WeightKg)
	if err != nil {
		return Quote{}, err
	}

	fees := r.Fees()
	insurance, _ := fees.Insurance()
	fuel, _ := fees.FuelSurcharge()
	subtotal := base + fees.Total()

	total := subtotal
	if req.Consolidated {
		if percent, ok := fw.Consolidation().Discount(); ok {
			total = subtotal * (1 - percent/100)
		}
	}

	return Quote{
		ZoneName:       z.Name(),
		Courier:        r.Courier(),
		ServiceType:    r.ServiceType(),
		SlabLabel:      slab.Label(),
		BaseCost:       base,
		TotalCost:      total,
		TransitMinDays: r.Transit().MinDays(),
		TransitMaxDays: r.Transit().MaxDays(),
		Breakdown: FeeBreakdown{
			Base:          base,
			Handling:      fees.Handling(),
			Insurance:     insurance,
			FuelSurcharge: fuel,
			Discount:      subtotal - total,
		},
	}, nil
}
