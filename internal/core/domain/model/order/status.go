package order

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
)

// Status is the persisted order status.
type Status string

const (
	// NoStatus is the previous status of an order's first history entry.
	NoStatus Status = ""

	Incoming           Status = "incoming"
	ArrivedAtWarehouse Status = "arrived_at_warehouse"
	Packed             Status = "packed"
	AwaitingPickup     Status = "awaiting_pickup"
	InTransit          Status = "in_transit"
	Delivered          Status = "delivered"

	// LegacyReceived is the historical name of ArrivedAtWarehouse.
	LegacyReceived Status = "received"
	// LegacyShipped is the historical name of InTransit.
	LegacyShipped Status = "shipped"
)

var (
	// ErrStatusUnchanged is returned when the target equals the current status.
	ErrStatusUnchanged = errs.NewConflictError("order status", "order already has this status")
	// ErrBackwardTransition is returned when a non-staff actor moves an order back.
	ErrBackwardTransition = errs.NewConflictError("order status", "only staff may move an order back in the pipeline")
	// ErrCorrectionNotesRequired is returned for a staff correction without notes.
	ErrCorrectionNotesRequired = errs.NewValueIsRequiredError("notes")
)

var pipeline = []Status{Incoming, ArrivedAtWarehouse, Packed, AwaitingPickup, InTransit, Delivered}

// ParseStatus accepts any of the eight persisted values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Pipeline returns the canonical statuses in order.
func Pipeline() []Status {
	out := make([]Status, len(pipeline))
	copy(out, pipeline)
	return out
}

// Validate checks the value is one of the eight persisted statuses.
func (s Status) Validate() error {
	if s.rank() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsLegacy reports whether s is one of the historical synonyms.
func (s Status) IsLegacy() bool {
	return s == LegacyReceived || s == LegacyShipped
}

// Canonical maps legacy synonyms to their pipeline status.
func (s Status) Canonical() Status {
	switch s {
	case LegacyReceived:
		return ArrivedAtWarehouse
	case LegacyShipped:
		return InTransit
	default:
		return s
	}
}

// ValidateTransition applies the transition policy for moving from s to target.
//
// Both sides are ranked by their canonical status, so legacy names are
// accepted and stored as given. Forward moves are always allowed. The same
// rank is rejected: "received" on an arrived_at_warehouse order is a no-op.
// Backward moves require a staff actor and notes explaining the correction.
func (s Status) ValidateTransition(target Status, actorType ActorType, notes string) error {
	if err := target.Validate(); err != nil {
		return err
	}

	from, to := s.rank(), target.rank()
	switch {
	case from < 0:
		return s.Validate()
	case to == from:
		return fmt.Errorf("%w: %s", ErrStatusUnchanged, target)
	case to > from:
		return nil
	case actorType != ActorStaff:
		return fmt.Errorf("%w: %s -> %s by %s", ErrBackwardTransition, s, target, actorType)
	case strings.TrimSpace(notes) == "":
		return fmt.Errorf("%w: correcting %s -> %s", ErrCorrectionNotesRequired, s, target)
	default:
		return nil
	}
}

func (s Status) rank() int {
	canonical := s.Canonical()
	for i, p := range pipeline {
		if p == canonical {
			return i
		}
	}
	return -1
}
