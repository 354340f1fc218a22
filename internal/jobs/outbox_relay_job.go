package jobs

import (
	"context"
	"log/slog"

	"forwarding/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelaySchedule fires every five seconds.
const OutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayResult, error)
}

// OutboxRelayJob periodically publishes pending outbox messages to Kafka.
type OutboxRelayJob struct {
	relayer   outboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(relayer outboxRelayer, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		relayer:   relayer,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(OutboxRelaySchedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", OutboxRelaySchedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce relays one batch. Errors are logged, never returned: the next tick retries.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid outbox batch size", "error", err)
		return
	}

	result, err := j.relayer.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return
	}

	if result.Failed > 0 {
		j.logger.WarnContext(ctx, "Outbox messages left pending", "published", result.Published, "failed", result.Failed)
	} else if result.Published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "published", result.Published)
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
