// Package staff records what warehouse staff did, for later aggregation on
// dashboards.
package staff

import (
	"errors"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrActivityIsNotConstructed is returned for a zero-value Activity.
var ErrActivityIsNotConstructed = errors.New("Activity must be created via NewActivity constructor")

// Activity is one staff action on an order. Action is the status the staff
// member moved the order to.
type Activity struct {
	id          kernel.UUID
	staffID     string
	orderID     kernel.UUID
	warehouseID kernel.UUID
	action      string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

func NewActivity(id kernel.UUID, staffID string, orderID, warehouseID kernel.UUID, action string, createdAt time.Time) (*Activity, error) {
	staffID = strings.TrimSpace(staffID)

	var staffErr, actionErr error
	if staffID == "" {
		staffErr = errs.NewValueIsRequiredError("staffId")
	}
	if strings.TrimSpace(action) == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}

	if err := errors.Join(
		id.Validate(),
		staffErr,
		orderID.Validate(),
		warehouseID.Validate(),
		actionErr,
	); err != nil {
		return nil, err
	}

	return &Activity{
		id:          id,
		staffID:     staffID,
		orderID:     orderID,
		warehouseID: warehouseID,
		action:      action,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (a *Activity) Validate() error {
	if a == nil {
		return ErrActivityIsNotConstructed
	}
	return a.guard.Validate(ErrActivityIsNotConstructed)
}

func (a *Activity) ID() kernel.UUID          { return a.id }
func (a *Activity) StaffID() string          { return a.staffID }
func (a *Activity) OrderID() kernel.UUID     { return a.orderID }
func (a *Activity) WarehouseID() kernel.UUID { return a.warehouseID }
func (a *Activity) Action() string           { return a.action }
func (a *Activity) CreatedAt() time.Time     { return a.createdAt }
