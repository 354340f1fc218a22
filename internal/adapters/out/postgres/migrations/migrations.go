// Package migrations applies versioned schema and data migrations. Applied
// versions are recorded in schema_migrations; each migration runs in its own
// transaction together with its bookkeeping row, so a failed migration leaves
// no trace and can be retried.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"forwarding/internal/adapters/out/postgres/forwarderrepo"
	"forwarding/internal/adapters/out/postgres/historyrepo"
	"forwarding/internal/adapters/out/postgres/orderrepo"
	"forwarding/internal/adapters/out/postgres/outboxrepo"
	"forwarding/internal/adapters/out/postgres/raterepo"
	"forwarding/internal/adapters/out/postgres/staffrepo"
	"forwarding/internal/adapters/out/postgres/zonerepo"

	"gorm.io/gorm"
)

// Migration is one versioned step. Up must be idempotent.
type Migration struct {
	Version     string
	Description string
	Up          func(tx *gorm.DB) error
}

// SchemaMigrationDTO records an applied migration.
type SchemaMigrationDTO struct {
	Version     string    `gorm:"type:varchar(64);primaryKey"`
	Description string    `gorm:"type:varchar(255);not null"`
	AppliedAt   time.Time `gorm:"not null"`
}

func (SchemaMigrationDTO) TableName() string {
	return "schema_migrations"
}

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&forwarderrepo.ForwarderDTO{},
		&zonerepo.ZoneDTO{},
		&raterepo.RateDTO{},
		&raterepo.WeightSlabDTO{},
		&orderrepo.OrderDTO{},
		&historyrepo.HistoryEntryDTO{},
		&staffrepo.ActivityDTO{},
		&staffrepo.DailyStatsDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// All returns the migrations in the order they must run.
func All() []Migration {
	return []Migration{
		{
			Version:     "0001_schema",
			Description: "create tables and partial unique indexes",
			Up:          createSchema,
		},
		{
			Version:     "0002_normalize_legacy_statuses",
			Description: "rewrite received/shipped to arrived_at_warehouse/in_transit",
			Up:          normalizeLegacyStatuses,
		},
	}
}

var schemaIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_shipping_zones_active_name
		ON shipping_zones (forwarder_id, lower(name)) WHERE active`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_shipping_rates_active_service
		ON shipping_rates (zone_id, lower(courier), service_type) WHERE active`,
	`CREATE INDEX IF NOT EXISTS ix_shipping_zones_countries
		ON shipping_zones USING GIN (countries)`,
	`CREATE INDEX IF NOT EXISTS ix_outbox_messages_pending
		ON outbox_messages (created_at) WHERE published_at IS NULL`,
}

func createSchema(tx *gorm.DB) error {
	if err := tx.AutoMigrate(Models()...); err != nil {
		return err
	}
	for _, stmt := range schemaIndexes {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// legacyStatuses maps historical status values to their pipeline names.
var legacyStatuses = map[string]string{
	"received": "arrived_at_warehouse",
	"shipped":  "in_transit",
}

func normalizeLegacyStatuses(tx *gorm.DB) error {
	for legacy, canonical := range legacyStatuses {
		updates := []struct {
			table  string
			column string
		}{
			{table: "orders", column: "status"},
			{table: "order_status_history", column: "previous_status"},
			{table: "order_status_history", column: "new_status"},
			{table: "staff_activities", column: "action"},
		}
		for _, u := range updates {
			sql := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", u.table, u.column, u.column)
			if err := tx.Exec(sql, canonical, legacy).Error; err != nil {
				return fmt.Errorf("normalize %s.%s: %w", u.table, u.column, err)
			}
		}
	}
	return nil
}

// Runner applies migrations that are not yet recorded.
type Runner struct {
	db         *gorm.DB
	logger     *slog.Logger
	migrations []Migration
}

func NewRunner(db *gorm.DB, logger *slog.Logger, migrations []Migration) *Runner {
	return &Runner{
		db:         db,
		logger:     logger.With("component", "migrations"),
		migrations: migrations,
	}
}

// Pending returns migrations not yet applied, in order.
func (r *Runner) Pending(ctx context.Context) ([]Migration, error) {
	if err := r.db.WithContext(ctx).AutoMigrate(&SchemaMigrationDTO{}); err != nil {
		return nil, fmt.Errorf("prepare schema_migrations: %w", err)
	}

	var applied []SchemaMigrationDTO
	if err := r.db.WithContext(ctx).Find(&applied).Error; err != nil {
		return nil, err
	}
	done := make(map[string]struct{}, len(applied))
	for _, a := range applied {
		done[a.Version] = struct{}{}
	}

	pending := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		if _, ok := done[m.Version]; !ok {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Up applies every pending migration and returns the applied versions.
// It stops at the first failure.
func (r *Runner) Up(ctx context.Context) ([]string, error) {
	pending, err := r.Pending(ctx)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(pending))
	for _, m := range pending {
		if m.Up == nil {
			return applied, errors.New("migration " + m.Version + " has no Up step")
		}

		start := time.Now()
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if upErr := m.Up(tx); upErr != nil {
				return upErr
			}
			return tx.Create(&SchemaMigrationDTO{
				Version:     m.Version,
				Description: m.Description,
				AppliedAt:   time.Now().UTC(),
			}).Error
		})
		if err != nil {
			r.logger.Error("migration failed", "version", m.Version, "error", err)
			return applied, fmt.Errorf("apply %s: %w", m.Version, err)
		}

		r.logger.Info("migration applied", "version", m.Version, "duration", time.Since(start))
		applied = append(applied, m.Version)
	}

	return applied, nil
}
