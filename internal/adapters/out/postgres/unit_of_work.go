// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work keeps track of the aggregates touched by a business transaction,
// coordinates writing them out and turns their domain events into outbox rows
// inside the same transaction.
//
// Key Features:
//   - Transaction management across all forwarding repositories
//   - Aggregate tracking for domain event processing
//   - Transactional outbox: events are stored before Commit, never lost after it
//   - Proper isolation between concurrent operations
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.OrderHistoryRepository().Append(ctx, entry); err != nil {
//	    return err
//	}
//
//	// o's StatusChanged event is written to outbox_messages here
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Concurrent status updates of one order are last-write-wins
package postgres

import (
	"context"
	"fmt"

	"forwarding/internal/adapters/out/postgres/forwarderrepo"
	"forwarding/internal/adapters/out/postgres/historyrepo"
	"forwarding/internal/adapters/out/postgres/orderrepo"
	"forwarding/internal/adapters/out/postgres/outboxrepo"
	"forwarding/internal/adapters/out/postgres/raterepo"
	"forwarding/internal/adapters/out/postgres/staffrepo"
	"forwarding/internal/adapters/out/postgres/zonerepo"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/outbox"
	"forwarding/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create with the concrete type, for callers that need TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
//
// On Commit every tracked aggregate that recorded domain events has them
// serialized into outbox_messages within the transaction, then cleared.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes pending domain events to the outbox and commits.
// If the outbox write fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushDomainEvents(ctx); err != nil {
		_ = uow.tx.Rollback().Error
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when there is no active transaction,
// which is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ForwarderRepository() ports.ForwarderRepository {
	return forwarderrepo.NewGormForwarderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ZoneRepository() ports.ZoneRepository {
	return zonerepo.NewGormZoneRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RateRepository() ports.RateRepository {
	return raterepo.NewGormRateRepository(uow.conn(), uow)
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Updated orders are tracked so their StatusChanged events reach the outbox.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderHistoryRepository() ports.OrderHistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) StaffActivityRepository() ports.StaffActivityRepository {
	return staffrepo.NewGormStaffActivityRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the number of aggregates tracked so far.
func (uow *GormUnitOfWork) TrackedAggregates() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushDomainEvents(ctx context.Context) error {
	repo := outboxrepo.NewGormOutboxRepository(uow.tx)

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}

		for _, event := range source.DomainEvents() {
			msg, err := outbox.NewMessage(event)
			if err != nil {
				return err
			}
			if err = repo.Add(ctx, msg); err != nil {
				return fmt.Errorf("store %s event of %s: %w", event.EventType(), tracked.ID, err)
			}
		}
		source.ClearDomainEvents()
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}
