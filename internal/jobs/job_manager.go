package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs   []namedJob
	logger *slog.Logger
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a manager for the roll-up job and, when relay is not
// nil, the outbox relay job. Without Kafka there is nothing to relay to and
// events stay in the outbox.
func NewJobManager(
	rollup *StaffActivityRollupJob,
	relay *OutboxRelayJob,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	jm.jobs = append(jm.jobs, namedJob{name: "staff activity rollup", job: rollup})
	if relay != nil {
		jm.jobs = append(jm.jobs, namedJob{name: "outbox relay", job: relay})
	} else {
		jm.logger.WarnContext(context.Background(), "Outbox relay disabled; events accumulate in the outbox")
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}

// Len reports how many jobs the manager runs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
