package staffrepo_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/pgtest"
	"forwarding/internal/adapters/out/postgres/staffrepo"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/staff"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type StaffActivityRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *staffrepo.GormStaffActivityRepository
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = staffrepo.NewGormStaffActivityRepository(suite.db)
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) TestRollupDays_CountsPerDayStaffAndWarehouse() {
	ctx := context.Background()
	warehouse := kernel.NewUUID()
	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	suite.appendActivity("alice", warehouse, day)
	suite.appendActivity("alice", warehouse, day.Add(2*time.Hour))
	suite.appendActivity("bob", warehouse, day.Add(time.Hour))
	suite.appendActivity("alice", warehouse, day.AddDate(0, 0, 1))

	rows, err := suite.repository.RollupDays(ctx, day, day.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Equal(int64(3), rows)

	suite.Equal(int64(2), suite.scans("alice", warehouse, day))
	suite.Equal(int64(1), suite.scans("bob", warehouse, day))
	suite.Equal(int64(1), suite.scans("alice", warehouse, day.AddDate(0, 0, 1)))
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) TestRollupDays_IsIdempotent() {
	ctx := context.Background()
	warehouse := kernel.NewUUID()
	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.appendActivity("alice", warehouse, day)

	_, err := suite.repository.RollupDays(ctx, day, day)
	suite.Require().NoError(err)
	_, err = suite.repository.RollupDays(ctx, day, day)
	suite.Require().NoError(err)
	suite.Equal(int64(1), suite.scans("alice", warehouse, day))

	suite.appendActivity("alice", warehouse, day.Add(time.Hour))
	_, err = suite.repository.RollupDays(ctx, day.Add(30*time.Minute), day.Add(30*time.Minute))
	suite.Require().NoError(err)
	suite.Equal(int64(2), suite.scans("alice", warehouse, day))
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) appendActivity(staffID string, warehouse kernel.UUID, at time.Time) {
	a, err := staff.NewActivity(kernel.NewUUID(), staffID, kernel.NewUUID(), warehouse, "packed", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(context.Background(), a))
}

func (suite *StaffActivityRepositoryIntegrationTestSuite) scans(staffID string, warehouse kernel.UUID, day time.Time) int64 {
	var dto staffrepo.DailyStatsDTO
	err := suite.db.
		Where("day = ? AND staff_id = ? AND warehouse_id = ?", day.Format(time.DateOnly), staffID, warehouse.Bytes()).
		First(&dto).Error
	suite.Require().NoError(err)
	return dto.Scans
}

func TestStaffActivityRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StaffActivityRepositoryIntegrationTestSuite))
}
