package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrDeactivateRateCommandIsNotConstructed = errors.New(
	"DeactivateRateCommand must be created via NewDeactivateRateCommand constructor",
)

type DeactivateRateCommand struct { //nolint:recvcheck //using for validation
	actorForwarderID kernel.UUID
	rateID           kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateRateCommand(actorForwarderID, rateID kernel.UUID) (DeactivateRateCommand, error) {
	if err := errors.Join(actorForwarderID.Validate(), rateID.Validate()); err != nil {
		return DeactivateRateCommand{}, err
	}

	return DeactivateRateCommand{
		actorForwarderID: actorForwarderID,
		rateID:           rateID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateRateCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateRateCommandIsNotConstructed)
}

func (c DeactivateRateCommand) ActorForwarderID() kernel.UUID { return c.actorForwarderID }
func (c DeactivateRateCommand) RateID() kernel.UUID           { return c.rateID }
