package forwarder

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrForwarderIsNotConstructed is returned when a Forwarder bypassed NewForwarder/RestoreForwarder.
	ErrForwarderIsNotConstructed = errors.New("Forwarder must be created via NewForwarder constructor")
	// ErrNameIsRequired is returned for a blank forwarder name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Forwarder is the aggregate root for a forwarding business.
// Zones, rates and orders reference it by ID only.
type Forwarder struct {
	id            kernel.UUID
	name          string
	consolidation Consolidation
	guard         guard.ConstructorGuard
}

// NewForwarder registers a forwarder with consolidation disabled.
//
// Example:
//
//	fw, err := forwarder.NewForwarder(kernel.NewUUID(), "Acme Forwarding")
func NewForwarder(id kernel.UUID, name string) (*Forwarder, error) {
	return RestoreForwarder(id, name, DisabledConsolidation())
}

// RestoreForwarder rebuilds a forwarder from persistence.
func RestoreForwarder(id kernel.UUID, name string, consolidation Consolidation) (*Forwarder, error) {
	f := &Forwarder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setConsolidation(consolidation),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate ensures the forwarder was built by a constructor.
func (f *Forwarder) Validate() error {
	if f == nil {
		return ErrForwarderIsNotConstructed
	}
	return f.guard.Validate(ErrForwarderIsNotConstructed)
}

// ID returns the forwarder identifier.
func (f *Forwarder) ID() kernel.UUID {
	return f.id
}

// Name returns the display name.
func (f *Forwarder) Name() string {
	return f.name
}

// Consolidation returns the current consolidation settings.
func (f *Forwarder) Consolidation() Consolidation {
	return f.consolidation
}

// ConfigureConsolidation replaces the consolidation settings.
func (f *Forwarder) ConfigureConsolidation(c Consolidation) error {
	return f.setConsolidation(c)
}

func (f *Forwarder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Forwarder) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	f.name = name
	return nil
}

func (f *Forwarder) setConsolidation(c Consolidation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f.consolidation = c
	return nil
}
