package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "forwarding/internal/adapters/out/postgres"
	"forwarding/internal/adapters/out/postgres/outboxrepo"
	"forwarding/internal/adapters/out/postgres/pgtest"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/model/staff"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the GORM-based
// Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ZoneRepository())
	suite.NotNil(uow2.OutboxRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChange_WritesOrderHistoryActivityAndOutbox() {
	ctx := context.Background()
	o := suite.addOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	actor, err := order.NewActor("staff-1", order.ActorStaff)
	suite.Require().NoError(err)
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry, err := o.ChangeStatus(order.StatusChange{NewStatus: order.ArrivedAtWarehouse, Actor: actor}, now)
	suite.Require().NoError(err)

	activity, err := staff.NewActivity(kernel.NewUUID(), actor.ID(), o.ID(), o.WarehouseID(), entry.NewStatus().String(), now)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.OrderHistoryRepository().Append(ctx, entry))
	suite.Require().NoError(uow.StaffActivityRepository().Append(ctx, activity))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(o.DomainEvents(), "Events should be cleared once stored")

	var messages []outboxrepo.MessageDTO
	suite.Require().NoError(suite.db.Find(&messages).Error)
	suite.Require().Len(messages, 1)
	suite.Equal(o.ID().String(), messages[0].AggregateID)
	suite.Equal(order.StatusChangedEventType, messages[0].EventType)

	var payload order.StatusChanged
	suite.Require().NoError(json.Unmarshal([]byte(messages[0].Payload), &payload))
	suite.Equal("incoming", payload.PreviousStatus)
	suite.Equal("arrived_at_warehouse", payload.NewStatus)
	suite.Equal("staff", payload.ActorType)

	suite.assertCount("order_status_history", 1)
	suite.assertCount("staff_activities", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Rollback_DiscardsEverything() {
	ctx := context.Background()
	o := suite.addOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	actor, err := order.NewActor("system", order.ActorSystem)
	suite.Require().NoError(err)
	entry, err := o.ChangeStatus(order.StatusChange{NewStatus: order.Packed, Actor: actor}, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.OrderHistoryRepository().Append(ctx, entry))
	suite.Require().NoError(uow.Rollback(ctx))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Incoming, got.Status())
	suite.assertCount("order_status_history", 0)
	suite.assertCount("outbox_messages", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FailedWrite_LeavesNoOutboxRow() {
	ctx := context.Background()
	o := suite.addOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	o, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	actor, err := order.NewActor("system", order.ActorSystem)
	suite.Require().NoError(err)
	_, err = o.ChangeStatus(order.StatusChange{NewStatus: order.Packed, Actor: actor}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	// a duplicate insert aborts the transaction, so the commit cannot store the event
	err = uow.OrderRepository().Add(ctx, o)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().Error(uow.Commit(ctx))

	suite.assertCount("outbox_messages", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	o := suite.addOrder()

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.db).CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder(suite)))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder(suite)))
	suite.Equal(2, uow.TrackedAggregates())

	suite.Require().NoError(uow.Commit(ctx))
	suite.Zero(uow.TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) addOrder() *order.Order {
	ctx := context.Background()
	o := newOrder(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func newOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		2, 50, "FedEx", time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count, table)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
