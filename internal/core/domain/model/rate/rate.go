package rate

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrRateIsNotConstructed is returned when a Rate bypassed NewRate/RestoreRate.
	ErrRateIsNotConstructed = errors.New("Rate must be created via NewRate constructor")
	// ErrCourierIsRequired is returned for a blank courier name.
	ErrCourierIsRequired = errs.NewValueIsRequiredError("courier")
)

// Rate is the aggregate root for one (zone, courier, service type) price list.
type Rate struct {
	id          kernel.UUID
	zoneID      kernel.UUID
	courier     string
	serviceType ServiceType
	slabs       []WeightSlab
	fees        Fees
	transit     TransitTime
	active      bool
	guard       guard.ConstructorGuard
}

// NewRate creates an active rate. Slabs must pass ValidateCoverage.
//
// Example:
//
//	fees, _ := rate.NewFees(5, nil, nil)
//	transit, _ := rate.NewTransitTime(2, 4)
//	r, err := rate.NewRate(kernel.NewUUID(), zoneID, "DHL", rate.Express, slabs, fees, transit)
func NewRate(
	id, zoneID kernel.UUID,
	courier string,
	serviceType ServiceType,
	slabs []WeightSlab,
	fees Fees,
	transit TransitTime,
) (*Rate, error) {
	if err := ValidateCoverage(slabs); err != nil {
		return nil, err
	}
	return RestoreRate(id, zoneID, courier, serviceType, slabs, fees, transit, true)
}

// RestoreRate rebuilds a rate from persistence without checking slab coverage.
func RestoreRate(
	id, zoneID kernel.UUID,
	courier string,
	serviceType ServiceType,
	slabs []WeightSlab,
	fees Fees,
	transit TransitTime,
	active bool,
) (*Rate, error) {
	r := &Rate{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setZoneID(zoneID),
		r.setCourier(courier),
		r.setServiceType(serviceType),
		r.setSlabs(slabs),
		r.setFees(fees),
		r.setTransit(transit),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the rate was built by a constructor.
func (r *Rate) Validate() error {
	if r == nil {
		return ErrRateIsNotConstructed
	}
	return r.guard.Validate(ErrRateIsNotConstructed)
}

func (r *Rate) ID() kernel.UUID {
	return r.id
}

func (r *Rate) ZoneID() kernel.UUID {
	return r.zoneID
}

func (r *Rate) Courier() string {
	return r.courier
}

func (r *Rate) ServiceType() ServiceType {
	return r.serviceType
}

// Slabs returns a copy of the weight slabs in stored order.
func (r *Rate) Slabs() []WeightSlab {
	out := make([]WeightSlab, len(r.slabs))
	copy(out, r.slabs)
	return out
}

func (r *Rate) Fees() Fees {
	return r.fees
}

func (r *Rate) Transit() TransitTime {
	return r.transit
}

func (r *Rate) IsActive() bool {
	return r.active
}

// Matches reports whether the rate is for courier (case-insensitive) and serviceType.
func (r *Rate) Matches(courier string, serviceType ServiceType) bool {
	return strings.EqualFold(r.courier, strings.TrimSpace(courier)) && r.serviceType == serviceType
}

// SelectSlab picks the slab pricing weight.
func (r *Rate) SelectSlab(weight float64) (WeightSlab, error) {
	return SelectSlab(r.slabs, weight)
}

// Deactivate removes the rate from resolution.
func (r *Rate) Deactivate() {
	r.active = false
}

func (r *Rate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rate) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	r.zoneID = zoneID
	return nil
}

func (r *Rate) setCourier(courier string) error {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return ErrCourierIsRequired
	}
	r.courier = courier
	return nil
}

func (r *Rate) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	r.serviceType = serviceType
	return nil
}

func (r *Rate) setSlabs(slabs []WeightSlab) error {
	for _, s := range slabs {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	r.slabs = make([]WeightSlab, len(slabs))
	copy(r.slabs, slabs)
	return nil
}

func (r *Rate) setFees(fees Fees) error {
	if err := fees.Validate(); err != nil {
		return err
	}
	r.fees = fees
	return nil
}

func (r *Rate) setTransit(transit TransitTime) error {
	if err := transit.Validate(); err != nil {
		return err
	}
	r.transit = transit
	return nil
}
