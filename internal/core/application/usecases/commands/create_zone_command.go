package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand adds a shipping zone to a forwarder. Country codes are
// upper-cased and deduplicated on construction.
//
// Example:
//
//	cmd, err := NewCreateZoneCommand(kernel.NewUUID(), forwarderID, "Southeast Asia", []string{"sg", "MY"})
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID      kernel.UUID
	forwarderID kernel.UUID
	name        string
	countries   kernel.CountrySet

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(zoneID, forwarderID kernel.UUID, name string, countries []string) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	var nameErr error
	cmd.name = strings.TrimSpace(name)
	if cmd.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	set, countriesErr := kernel.NewCountrySet(countries)
	cmd.countries = set

	if err := errors.Join(zoneID.Validate(), forwarderID.Validate(), nameErr, countriesErr); err != nil {
		return CreateZoneCommand{}, err
	}

	cmd.zoneID = zoneID
	cmd.forwarderID = forwarderID
	return cmd, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) ZoneID() kernel.UUID          { return c.zoneID }
func (c CreateZoneCommand) ForwarderID() kernel.UUID     { return c.forwarderID }
func (c CreateZoneCommand) Name() string                 { return c.name }
func (c CreateZoneCommand) Countries() kernel.CountrySet { return c.countries }
