package main

import (
	"context"
	"flag"
	"time"

	"forwarding/cmd"
	"forwarding/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
)

var (
	dryRun  = flag.Bool("dry-run", false, "List pending migrations without applying them")
	timeout = flag.Duration("timeout", 10*time.Minute, "Upper bound for the whole run")
)

func main() {
	flag.Parse()

	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cmd.NewLogger(cfg.LogLevel)

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runner := migrations.NewRunner(db, logger, migrations.All())

	if *dryRun {
		pending, pendingErr := runner.Pending(ctx)
		if pendingErr != nil {
			log.Fatalf("Failed to list pending migrations: %v", pendingErr)
		}
		for _, m := range pending {
			logger.Info("pending migration", "version", m.Version, "description", m.Description)
		}
		logger.Info("dry run finished", "pending", len(pending))
		return
	}

	applied, err := runner.Up(ctx)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	logger.Info("migrations finished", "applied", applied)
}
