package zone

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrZoneIsNotConstructed is returned when a Zone bypassed NewZone/RestoreZone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	// ErrNameIsRequired is returned for a blank zone name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Zone is the aggregate root for a forwarder's shipping zone.
type Zone struct {
	id          kernel.UUID
	forwarderID kernel.UUID
	name        string
	countries   kernel.CountrySet
	active      bool
	guard       guard.ConstructorGuard
}

// NewZone creates an active zone.
//
// Example:
//
//	countries, _ := kernel.NewCountrySet([]string{"SG", "MY"})
//	z, err := zone.NewZone(kernel.NewUUID(), forwarderID, "Asia", countries)
func NewZone(id, forwarderID kernel.UUID, name string, countries kernel.CountrySet) (*Zone, error) {
	return RestoreZone(id, forwarderID, name, countries, true)
}

// RestoreZone rebuilds a zone from persistence.
func RestoreZone(id, forwarderID kernel.UUID, name string, countries kernel.CountrySet, active bool) (*Zone, error) {
	z := &Zone{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setForwarderID(forwarderID),
		z.setName(name),
		z.setCountries(countries),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// Validate ensures the zone was built by a constructor.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// IsEqual compares zones by identifier.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) ForwarderID() kernel.UUID {
	return z.forwarderID
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) Countries() kernel.CountrySet {
	return z.countries
}

func (z *Zone) IsActive() bool {
	return z.active
}

// IsOwnedBy reports whether the zone belongs to the forwarder.
func (z *Zone) IsOwnedBy(forwarderID kernel.UUID) bool {
	return z.forwarderID.IsEqual(forwarderID)
}

// Covers reports whether the zone is active and contains the country.
func (z *Zone) Covers(country kernel.CountryCode) bool {
	return z.active && z.countries.Contains(country)
}

// ReplaceCountries swaps the country set. Conflicts with sibling zones are
// checked by the caller before persisting.
func (z *Zone) ReplaceCountries(countries kernel.CountrySet) error {
	return z.setCountries(countries)
}

// Deactivate takes the zone out of rate resolution. Deactivating twice is a no-op.
func (z *Zone) Deactivate() {
	z.active = false
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setForwarderID(forwarderID kernel.UUID) error {
	if err := forwarderID.Validate(); err != nil {
		return err
	}
	z.forwarderID = forwarderID
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setCountries(countries kernel.CountrySet) error {
	if err := countries.Validate(); err != nil {
		return err
	}
	if countries.Len() == 0 {
		return kernel.ErrCountrySetIsEmpty
	}
	z.countries = countries
	return nil
}
