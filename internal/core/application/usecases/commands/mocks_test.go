package commands_test

import (
	"context"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/forwarder"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/model/outbox"
	"forwarding/internal/core/domain/model/rate"
	"forwarding/internal/core/domain/model/staff"
	"forwarding/internal/core/domain/model/zone"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockForwarderRepository struct{ mock.Mock }

func (m *MockForwarderRepository) Add(ctx context.Context, f *forwarder.Forwarder) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockForwarderRepository) Update(ctx context.Context, f *forwarder.Forwarder) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockForwarderRepository) Get(ctx context.Context, id kernel.UUID) (*forwarder.Forwarder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forwarder.Forwarder), args.Error(1)
}

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) ListActiveByForwarder(ctx context.Context, forwarderID kernel.UUID) ([]*zone.Zone, error) {
	args := m.Called(ctx, forwarderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) Add(ctx context.Context, r *rate.Rate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRateRepository) Update(ctx context.Context, r *rate.Rate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRateRepository) Get(ctx context.Context, id kernel.UUID) (*rate.Rate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rate.Rate), args.Error(1)
}

func (m *MockRateRepository) ListActiveByZone(ctx context.Context, zoneID kernel.UUID) ([]*rate.Rate, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rate.Rate), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderHistoryRepository struct{ mock.Mock }

func (m *MockOrderHistoryRepository) Append(ctx context.Context, e *order.HistoryEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockOrderHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.HistoryEntry), args.Error(1)
}

type MockStaffActivityRepository struct{ mock.Mock }

func (m *MockStaffActivityRepository) Append(ctx context.Context, a *staff.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockStaffActivityRepository) RollupDays(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboxRepository) ListUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockPublishRecorder struct{ mock.Mock }

func (m *MockPublishRecorder) RecordOutboxPublish(eventType string, success bool) {
	m.Called(eventType, success)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ForwarderRepository() ports.ForwarderRepository {
	args := m.Called()
	return args.Get(0).(ports.ForwarderRepository)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) RateRepository() ports.RateRepository {
	args := m.Called()
	return args.Get(0).(ports.RateRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderHistoryRepository() ports.OrderHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderHistoryRepository)
}

func (m *MockUoW) StaffActivityRepository() ports.StaffActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffActivityRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockForwarderUoWFactory struct{ uow *MockUoW }

func (f MockForwarderUoWFactory) Create() commands.ForwarderUoW { return f.uow }

type MockCatalogUoWFactory struct{ uow *MockUoW }

func (f MockCatalogUoWFactory) Create() commands.CatalogUoW { return f.uow }

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockStatusUoWFactory struct{ uow *MockUoW }

func (f MockStatusUoWFactory) Create() commands.StatusUoW { return f.uow }

type MockOutboxUoWFactory struct{ uow *MockUoW }

func (f MockOutboxUoWFactory) Create() commands.OutboxUoW { return f.uow }

type MockStaffActivityUoWFactory struct{ uow *MockUoW }

func (f MockStaffActivityUoWFactory) Create() commands.StaffActivityUoW { return f.uow }

func mustCountries(codes ...string) kernel.CountrySet {
	set, err := kernel.NewCountrySet(codes)
	if err != nil {
		panic(err)
	}
	return set
}

func mustZone(forwarderID kernel.UUID, name string, codes ...string) *zone.Zone {
	z, err := zone.NewZone(kernel.NewUUID(), forwarderID, name, mustCountries(codes...))
	if err != nil {
		panic(err)
	}
	return z
}

func ptr(v float64) *float64 { return &v }

func mustRate(zoneID kernel.UUID, courier string, serviceType rate.ServiceType) *rate.Rate {
	slab, err := rate.NewWeightSlab(0, nil, nil, ptr(25), "per kg")
	if err != nil {
		panic(err)
	}
	fees, err := rate.NewFees(5, nil, nil)
	if err != nil {
		panic(err)
	}
	transit, err := rate.NewTransitTime(2, 4)
	if err != nil {
		panic(err)
	}
	r, err := rate.NewRate(kernel.NewUUID(), zoneID, courier, serviceType, []rate.WeightSlab{slab}, fees, transit)
	if err != nil {
		panic(err)
	}
	return r
}

func mustOrder(forwarderID kernel.UUID, status order.Status) *order.Order {
	o, err := order.RestoreOrder(order.Snapshot{
		ID:            kernel.NewUUID(),
		CustomerID:    kernel.NewUUID(),
		ForwarderID:   forwarderID,
		WarehouseID:   kernel.NewUUID(),
		WeightKg:      3.5,
		DeclaredValue: 120,
		Courier:       "DHL",
		Status:        status,
		CreatedAt:     time.Now().UTC().Add(-time.Hour),
	})
	if err != nil {
		panic(err)
	}
	return o
}
