package jobs

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaffActivityRollupSchedule fires at the start of every minute.
const StaffActivityRollupSchedule = "0 * * * * *"

type staffActivityRollup interface {
	Handle(ctx context.Context, cmd commands.RollupStaffActivityCommand) (int64, error)
}

// RollupRecorder observes roll-up runs.
type RollupRecorder interface {
	RecordRollup(success bool)
}

// StaffActivityRollupJob recounts staff_daily_stats for today and yesterday,
// so activity logged just before midnight UTC is still picked up after it.
type StaffActivityRollupJob struct {
	rollup   staffActivityRollup
	recorder RollupRecorder
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaffActivityRollupJob(rollup staffActivityRollup, recorder RollupRecorder, logger *slog.Logger) *StaffActivityRollupJob {
	return &StaffActivityRollupJob{
		rollup:   rollup,
		recorder: recorder,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "staff_activity_rollup_job"),
	}
}

func (j *StaffActivityRollupJob) Start() error {
	if _, err := j.cron.AddFunc(StaffActivityRollupSchedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Staff activity rollup job started", "schedule", StaffActivityRollupSchedule)
	return nil
}

func (j *StaffActivityRollupJob) RunOnce(ctx context.Context) {
	now := j.now().UTC()
	cmd, err := commands.NewRollupStaffActivityCommand(now.AddDate(0, 0, -1), now)
	if err == nil {
		var rows int64
		rows, err = j.rollup.Handle(ctx, cmd)
		if err == nil {
			j.logger.DebugContext(ctx, "Staff activity rolled up", "rows", rows)
		}
	}

	if j.recorder != nil {
		j.recorder.RecordRollup(err == nil)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Staff activity rollup failed", "error", err)
	}
}

func (j *StaffActivityRollupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Staff activity rollup job stopped")
}
