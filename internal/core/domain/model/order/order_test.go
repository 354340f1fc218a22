package order_test

import (
	"strings"
	"testing"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3.5, 120, "DHL", createdAt)
	require.NoError(t, err)
	return o
}

func staff(t *testing.T) order.Actor {
	t.Helper()
	a, err := order.NewActor("staff-42", order.ActorStaff)
	require.NoError(t, err)
	return a
}

func TestNewOrder(t *testing.T) {
	t.Run("should create incoming order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Incoming, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Nil(t, o.ReceivedAt())
		assert.False(t, o.IsLabelPrinted())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, -1, " ", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "weightKg")
		assert.Contains(t, err.Error(), "declaredValue")
		assert.Contains(t, err.Error(), "courier")
	})
}

func TestRestoreOrder_AcceptsLegacyStatus(t *testing.T) {
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		CustomerID:  kernel.NewUUID(),
		ForwarderID: kernel.NewUUID(),
		WarehouseID: kernel.NewUUID(),
		WeightKg:    1,
		Courier:     "UPS",
		Status:      order.LegacyShipped,
		CreatedAt:   createdAt,
	})

	require.NoError(t, err)
	assert.Equal(t, order.LegacyShipped, o.Status())
}

func TestOrder_OpeningEntry(t *testing.T) {
	o := newOrder(t)
	customer, err := order.NewActor(o.CustomerID().String(), order.ActorCustomer)
	require.NoError(t, err)

	entry, err := o.OpeningEntry(customer)

	require.NoError(t, err)
	assert.Equal(t, order.NoStatus, entry.PreviousStatus())
	assert.Equal(t, order.Incoming, entry.NewStatus())
	assert.Equal(t, createdAt, entry.CreatedAt())
	assert.True(t, entry.OrderID().IsEqual(o.ID()))
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should record history entry with previous status", func(t *testing.T) {
		o := newOrder(t)
		now := createdAt.Add(time.Hour)
		scan, err := order.NewScanData("PKG-1", "Dock 1", "scanner-7")
		require.NoError(t, err)

		entry, err := o.ChangeStatus(order.StatusChange{
			NewStatus: order.ArrivedAtWarehouse,
			Actor:     staff(t),
			Notes:     "received at dock",
			Scan:      &scan,
		}, now)

		require.NoError(t, err)
		assert.Equal(t, order.Incoming, entry.PreviousStatus())
		assert.Equal(t, order.ArrivedAtWarehouse, entry.NewStatus())
		assert.Equal(t, "staff-42", entry.Actor().ID())
		assert.Equal(t, "PKG-1", entry.Scan().Barcode())
		assert.Equal(t, now, entry.CreatedAt())
		assert.Equal(t, order.ArrivedAtWarehouse, o.Status())
		require.NotNil(t, o.ReceivedAt())
		assert.Equal(t, now, *o.ReceivedAt())
	})

	t.Run("should not overwrite stage timestamps", func(t *testing.T) {
		o := newOrder(t)
		first := createdAt.Add(time.Hour)
		second := first.Add(time.Hour)
		third := second.Add(time.Hour)

		_, err := o.ChangeStatus(order.StatusChange{NewStatus: order.ArrivedAtWarehouse, Actor: staff(t)}, first)
		require.NoError(t, err)
		_, err = o.ChangeStatus(order.StatusChange{NewStatus: order.Incoming, Actor: staff(t), Notes: "mis-scan"}, second)
		require.NoError(t, err)
		_, err = o.ChangeStatus(order.StatusChange{NewStatus: order.ArrivedAtWarehouse, Actor: staff(t)}, third)
		require.NoError(t, err)

		assert.Equal(t, first, *o.ReceivedAt())
	})

	t.Run("should stamp only the target stage when skipping", func(t *testing.T) {
		o := newOrder(t)
		now := createdAt.Add(time.Hour)

		_, err := o.ChangeStatus(order.StatusChange{NewStatus: order.InTransit, Actor: staff(t)}, now)

		require.NoError(t, err)
		assert.Nil(t, o.ReceivedAt())
		assert.Nil(t, o.PackedAt())
		assert.Equal(t, now, *o.ShippedAt())
	})

	t.Run("should keep legacy target as sent and stamp its canonical stage", func(t *testing.T) {
		system, err := order.NewActor("carrier-sync", order.ActorSystem)
		require.NoError(t, err)

		tests := []struct {
			target  order.Status
			stamped func(*order.Order) *time.Time
		}{
			{order.LegacyReceived, (*order.Order).ReceivedAt},
			{order.LegacyShipped, (*order.Order).ShippedAt},
		}
		for _, tt := range tests {
			o := newOrder(t)
			now := createdAt.Add(time.Hour)

			entry, err := o.ChangeStatus(order.StatusChange{NewStatus: tt.target, Actor: system}, now)

			require.NoError(t, err, tt.target)
			assert.Equal(t, tt.target, o.Status())
			assert.Equal(t, tt.target, entry.NewStatus())
			require.NotNil(t, tt.stamped(o), tt.target)
			assert.Equal(t, now, *tt.stamped(o))

			ev, ok := o.DomainEvents()[0].(order.StatusChanged)
			require.True(t, ok)
			assert.Equal(t, tt.target.String(), ev.NewStatus)
		}
	})

	t.Run("should raise status changed event", func(t *testing.T) {
		o := newOrder(t)
		now := createdAt.Add(time.Hour)

		_, err := o.ChangeStatus(order.StatusChange{NewStatus: order.Packed, Actor: staff(t)}, now)
		require.NoError(t, err)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		ev, ok := events[0].(order.StatusChanged)
		require.True(t, ok)
		assert.Equal(t, order.StatusChangedEventType, ev.EventType())
		assert.Equal(t, o.ID().String(), ev.AggregateID())
		assert.Equal(t, "incoming", ev.PreviousStatus)
		assert.Equal(t, "packed", ev.NewStatus)
		assert.Equal(t, "staff", ev.ActorType)
		assert.Equal(t, now, ev.OccurredOn())

		o.ClearDomainEvents()
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject forwarder that does not own the order", func(t *testing.T) {
		o := newOrder(t)
		stranger, err := order.NewActor(kernel.NewUUID().String(), order.ActorForwarder)
		require.NoError(t, err)

		entry, err := o.ChangeStatus(order.StatusChange{NewStatus: order.Packed, Actor: stranger}, createdAt)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, entry)
		assert.Equal(t, order.Incoming, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should allow owning forwarder", func(t *testing.T) {
		o := newOrder(t)
		owner, err := order.NewActor(o.ForwarderID().String(), order.ActorForwarder)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.StatusChange{NewStatus: order.AwaitingPickup, Actor: owner}, createdAt)

		require.NoError(t, err)
	})

	t.Run("should match owning forwarder by identifier not spelling", func(t *testing.T) {
		o := newOrder(t)
		owner, err := order.NewActor("{"+strings.ToUpper(o.ForwarderID().String())+"}", order.ActorForwarder)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.StatusChange{NewStatus: order.Packed, Actor: owner}, createdAt)

		require.NoError(t, err)
	})

	t.Run("should reject forwarder actor without an identifier", func(t *testing.T) {
		o := newOrder(t)
		actor, err := order.NewActor("acme-ops", order.ActorForwarder)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.StatusChange{NewStatus: order.Packed, Actor: actor}, createdAt)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should leave order untouched on rejected transition", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.StatusChange{NewStatus: order.Incoming, Actor: staff(t)}, createdAt)

		require.ErrorIs(t, err, order.ErrStatusUnchanged)
		assert.Equal(t, order.Incoming, o.Status())
	})

	t.Run("should reject zero value actor", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.StatusChange{NewStatus: order.Packed}, createdAt)

		require.ErrorIs(t, err, order.ErrActorIsNotConstructed)
	})
}

func TestOrder_MarkLabelPrinted(t *testing.T) {
	o := newOrder(t)

	o.MarkLabelPrinted()
	o.MarkLabelPrinted()

	assert.True(t, o.IsLabelPrinted())
}

func TestNewHistoryEntry(t *testing.T) {
	_, err := order.NewHistoryEntry(kernel.NewUUID(), kernel.NewUUID(), order.Status("lost"), order.Packed, order.Actor{}, "", nil, time.Time{})

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrActorIsNotConstructed)
	assert.Contains(t, err.Error(), "lost")
	assert.Contains(t, err.Error(), "createdAt")
}
