package commands

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrRegisterForwarderCommandIsNotConstructed = errors.New(
	"RegisterForwarderCommand must be created via NewRegisterForwarderCommand constructor",
)

// RegisterForwarderCommand registers a forwarder with consolidation disabled.
//
// Example:
//
//	cmd, err := NewRegisterForwarderCommand(kernel.NewUUID(), "Shipito")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type RegisterForwarderCommand struct { //nolint:recvcheck //using for validation
	forwarderID kernel.UUID
	name        string

	guard guard.ConstructorGuard
}

func NewRegisterForwarderCommand(forwarderID kernel.UUID, name string) (RegisterForwarderCommand, error) {
	cmd := RegisterForwarderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setForwarderID(forwarderID),
		cmd.setName(name),
	); err != nil {
		return RegisterForwarderCommand{}, err
	}

	return cmd, nil
}

func (c RegisterForwarderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterForwarderCommandIsNotConstructed)
}

func (c RegisterForwarderCommand) ForwarderID() kernel.UUID {
	return c.forwarderID
}

func (c RegisterForwarderCommand) Name() string {
	return c.name
}

func (c *RegisterForwarderCommand) setForwarderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.forwarderID = id
	return nil
}

func (c *RegisterForwarderCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
