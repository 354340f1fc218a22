package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrUpdateZoneCountriesCommandIsNotConstructed = errors.New(
	"UpdateZoneCountriesCommand must be created via NewUpdateZoneCountriesCommand constructor",
)

// UpdateZoneCountriesCommand replaces the country list of a zone owned by actorForwarderID.
type UpdateZoneCountriesCommand struct { //nolint:recvcheck //using for validation
	actorForwarderID kernel.UUID
	zoneID           kernel.UUID
	countries        kernel.CountrySet

	guard guard.ConstructorGuard
}

func NewUpdateZoneCountriesCommand(actorForwarderID, zoneID kernel.UUID, countries []string) (UpdateZoneCountriesCommand, error) {
	set, countriesErr := kernel.NewCountrySet(countries)
	if err := errors.Join(actorForwarderID.Validate(), zoneID.Validate(), countriesErr); err != nil {
		return UpdateZoneCountriesCommand{}, err
	}

	return UpdateZoneCountriesCommand{
		actorForwarderID: actorForwarderID,
		zoneID:           zoneID,
		countries:        set,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateZoneCountriesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateZoneCountriesCommandIsNotConstructed)
}

func (c UpdateZoneCountriesCommand) ActorForwarderID() kernel.UUID { return c.actorForwarderID }
func (c UpdateZoneCountriesCommand) ZoneID() kernel.UUID           { return c.zoneID }
func (c UpdateZoneCountriesCommand) Countries() kernel.CountrySet  { return c.countries }
