// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ForwarderRepoFactory interface {
		ForwarderRepository() ports.ForwarderRepository
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	RateRepoFactory interface {
		RateRepository() ports.RateRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderHistoryRepoFactory interface {
		OrderHistoryRepository() ports.OrderHistoryRepository
	}

	StaffActivityRepoFactory interface {
		StaffActivityRepository() ports.StaffActivityRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ForwarderUoW manages transactions for forwarder registry operations.
	ForwarderUoW interface {
		TxManager
		ForwarderRepoFactory
	}

	ForwarderUoWFactory interface {
		Create() ForwarderUoW
	}

	// CatalogUoW manages transactions over zones and their rates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   z, err := uow.ZoneRepository().Get(ctx, zoneID)
	//   rates, err := uow.RateRepository().ListActiveByZone(ctx, z.ID())
	//   // ... deactivate both
	//
	//   err = uow.Commit(ctx)
	CatalogUoW interface {
		TxManager
		ZoneRepoFactory
		RateRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order intake and label printing.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderHistoryRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StatusUoW manages the status update transaction: the order, its history,
	// staff activity and, through the unit of work's commit, the outbox.
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		OrderHistoryRepoFactory
		StaffActivityRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// OutboxUoW manages the relay transaction that locks and updates outbox rows.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// StaffActivityUoW manages the daily roll-up transaction.
	StaffActivityUoW interface {
		TxManager
		StaffActivityRepoFactory
	}

	StaffActivityUoWFactory interface {
		Create() StaffActivityUoW
	}
)
