// Package pgtest starts a throwaway PostgreSQL container with the service
// schema applied, for repository integration suites.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"forwarding/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Tables lists every service table, for TRUNCATE between tests.
const Tables = "forwarders, shipping_zones, shipping_rates, weight_slabs, orders, " +
	"order_status_history, staff_activities, staff_daily_stats, outbox_messages"

// Start runs postgres:15-alpine and applies all migrations.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return container, nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err = migrations.NewRunner(db, logger, migrations.All()).Up(ctx); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every service table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables).Error
}
