package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forwarding/cmd"
	"forwarding/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cmd.NewLogger(cfg.LogLevel)

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Migrations run from cmd/migrate; the server only reports what is missing.
	pending, err := migrations.NewRunner(db, logger, migrations.All()).Pending(ctx)
	if err != nil {
		log.Fatalf("Failed to check migrations: %v", err)
	}
	for _, m := range pending {
		logger.Warn("migration not applied", "version", m.Version, "description", m.Description)
	}

	app := cmd.NewCompositionRoot(cfg, db, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("close publisher", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, cfg.HTTPPort)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
