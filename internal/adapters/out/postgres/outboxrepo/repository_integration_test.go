package outboxrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/outboxrepo"
	"forwarding/internal/adapters/out/postgres/pgtest"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/model/outbox"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestListUnpublished_OldestFirstAndLimited() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)
	suite.addMessage(base.Add(2 * time.Second))
	first := suite.addMessage(base)
	second := suite.addMessage(base.Add(time.Second))

	messages, err := suite.repository.ListUnpublished(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.True(messages[0].ID().IsEqual(first.ID()))
	suite.True(messages[1].ID().IsEqual(second.ID()))
	suite.JSONEq(string(first.Payload()), string(messages[0].Payload()))
	suite.Equal(order.StatusChanged{}.EventType(), messages[0].EventType())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestUpdate_PublishedMessagesAreSkipped() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)
	published := suite.addMessage(base)
	failing := suite.addMessage(base.Add(time.Second))

	published.MarkPublished(base.Add(time.Minute))
	suite.Require().NoError(suite.repository.Update(ctx, published))
	failing.MarkFailed(errors.New("broker unavailable"))
	suite.Require().NoError(suite.repository.Update(ctx, failing))

	messages, err := suite.repository.ListUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.True(messages[0].ID().IsEqual(failing.ID()))
	suite.Equal(1, messages[0].RetryCount())
	suite.Equal("broker unavailable", messages[0].LastError())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestListUnpublished_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	suite.addMessage(time.Now().UTC())

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	locked, err := outboxrepo.NewGormOutboxRepository(tx).ListUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	other := suite.db.Begin()
	suite.Require().NoError(other.Error)
	defer other.Rollback()

	visible, err := outboxrepo.NewGormOutboxRepository(other).ListUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(visible)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestListUnpublished_RejectsNonPositiveLimit() {
	_, err := suite.repository.ListUnpublished(context.Background(), 0)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *OutboxRepositoryIntegrationTestSuite) addMessage(at time.Time) *outbox.Message {
	m, err := outbox.NewMessage(order.StatusChanged{
		ID:             kernel.NewUUID().String(),
		OrderID:        kernel.NewUUID().String(),
		PreviousStatus: order.Incoming.String(),
		NewStatus:      order.ArrivedAtWarehouse.String(),
		ActorID:        "staff-1",
		ActorType:      order.ActorStaff.String(),
		OccurredAt:     at,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), m))
	return m
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
