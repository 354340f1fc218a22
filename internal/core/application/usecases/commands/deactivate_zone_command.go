package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrDeactivateZoneCommandIsNotConstructed = errors.New(
	"DeactivateZoneCommand must be created via NewDeactivateZoneCommand constructor",
)

type DeactivateZoneCommand struct { //nolint:recvcheck //using for validation
	actorForwarderID kernel.UUID
	zoneID           kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateZoneCommand(actorForwarderID, zoneID kernel.UUID) (DeactivateZoneCommand, error) {
	if err := errors.Join(actorForwarderID.Validate(), zoneID.Validate()); err != nil {
		return DeactivateZoneCommand{}, err
	}

	return DeactivateZoneCommand{
		actorForwarderID: actorForwarderID,
		zoneID:           zoneID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateZoneCommandIsNotConstructed)
}

func (c DeactivateZoneCommand) ActorForwarderID() kernel.UUID { return c.actorForwarderID }
func (c DeactivateZoneCommand) ZoneID() kernel.UUID           { return c.zoneID }
