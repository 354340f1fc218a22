package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var ErrConfigureConsolidationCommandIsNotConstructed = errors.New(
	"ConfigureConsolidationCommand must be created via NewConfigureConsolidationCommand constructor",
)

// ConfigureConsolidationCommand replaces a forwarder's consolidation settings.
// The settings are validated when the command is built, so a holding period
// outside 1..60 days never reaches the handler.
type ConfigureConsolidationCommand struct { //nolint:recvcheck //using for validation
	forwarderID   kernel.UUID
	consolidation forwarder.Consolidation

	guard guard.ConstructorGuard
}

func NewConfigureConsolidationCommand(
	forwarderID kernel.UUID,
	enabled bool,
	discountPercent float64,
	holdingPeriodDays int,
) (ConfigureConsolidationCommand, error) {
	consolidation, consolidationErr := forwarder.NewConsolidation(enabled, discountPercent, holdingPeriodDays)

	if err := errors.Join(forwarderID.Validate(), consolidationErr); err != nil {
		return ConfigureConsolidationCommand{}, err
	}

	return ConfigureConsolidationCommand{
		forwarderID:   forwarderID,
		consolidation: consolidation,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ConfigureConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrConfigureConsolidationCommandIsNotConstructed)
}

func (c ConfigureConsolidationCommand) ForwarderID() kernel.UUID {
	return c.forwarderID
}

func (c ConfigureConsolidationCommand) Consolidation() forwarder.Consolidation {
	return c.consolidation
}
