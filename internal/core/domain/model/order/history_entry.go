package order

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned for a zero-value HistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is an immutable record of one status change. It has no setters.
type HistoryEntry struct {
	id             kernel.UUID
	orderID        kernel.UUID
	previousStatus Status
	newStatus      Status
	actor          Actor
	notes          string
	scan           *ScanData
	createdAt      time.Time
	guard          guard.ConstructorGuard
}

// NewHistoryEntry builds an entry. previous may be NoStatus for the order's
// first entry; legacy statuses are accepted so that old records can be read.
func NewHistoryEntry(
	id, orderID kernel.UUID,
	previous, next Status,
	actor Actor,
	notes string,
	scan *ScanData,
	createdAt time.Time,
) (*HistoryEntry, error) {
	var prevErr error
	if previous != NoStatus {
		prevErr = previous.Validate()
	}
	var scanErr error
	if scan != nil {
		scanErr = scan.Validate()
	}
	var createdErr error
	if createdAt.IsZero() {
		createdErr = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		prevErr,
		next.Validate(),
		actor.Validate(),
		scanErr,
		createdErr,
	); err != nil {
		return nil, err
	}

	e := &HistoryEntry{
		id:             id,
		orderID:        orderID,
		previousStatus: previous,
		newStatus:      next,
		actor:          actor,
		notes:          notes,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}
	if scan != nil {
		s := *scan
		e.scan = &s
	}
	return e, nil
}

func (e *HistoryEntry) Validate() error {
	if e == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (e *HistoryEntry) ID() kernel.UUID        { return e.id }
func (e *HistoryEntry) OrderID() kernel.UUID   { return e.orderID }
func (e *HistoryEntry) PreviousStatus() Status { return e.previousStatus }
func (e *HistoryEntry) NewStatus() Status      { return e.newStatus }
func (e *HistoryEntry) Actor() Actor           { return e.actor }
func (e *HistoryEntry) Notes() string          { return e.notes }
func (e *HistoryEntry) CreatedAt() time.Time   { return e.createdAt }

// Scan returns a copy of the scan metadata, or nil.
func (e *HistoryEntry) Scan() *ScanData {
	if e.scan == nil {
		return nil
	}
	s := *e.scan
	return &s
}
