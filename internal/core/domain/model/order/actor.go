package order

import (
	"errors"
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ActorType classifies who changed an order.
type ActorType string

const (
	ActorStaff     ActorType = "staff"
	ActorSystem    ActorType = "system"
	ActorForwarder ActorType = "forwarder"
	ActorCustomer  ActorType = "customer"
)

// ErrActorIsNotConstructed is returned for a zero-value Actor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ParseActorType accepts the actor type in any letter case.
func ParseActorType(raw string) (ActorType, error) {
	t := ActorType(strings.ToLower(strings.TrimSpace(raw)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t ActorType) Validate() error {
	switch t {
	case ActorStaff, ActorSystem, ActorForwarder, ActorCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("actorType", fmt.Errorf("%q is not a valid actor type", string(t)))
	}
}

func (t ActorType) String() string {
	return string(t)
}

// Actor identifies who performed a change. Identity is trusted as given.
type Actor struct { //nolint:recvcheck //using for validation
	id        string
	actorType ActorType
	guard     guard.ConstructorGuard
}

func NewActor(id string, actorType ActorType) (Actor, error) {
	id = strings.TrimSpace(id)

	var idErr error
	if id == "" {
		idErr = errs.NewValueIsRequiredError("actorId")
	}
	if err := errors.Join(idErr, actorType.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, actorType: actorType, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() string {
	return a.id
}

func (a Actor) Type() ActorType {
	return a.actorType
}
