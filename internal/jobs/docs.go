// Package jobs provides scheduled background tasks for the forwarding service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaffActivityRollupJob - Runs every minute and recounts staff_daily_stats
// for the current and previous UTC day
// 2. OutboxRelayJob - Runs every five seconds and publishes pending outbox
// messages to Kafka; only scheduled when Kafka is configured
//
// # Usage
//
//	rollupJob := jobs.NewStaffActivityRollupJob(&rollupHandler, appMetrics, logger)
//	relayJob := jobs.NewOutboxRelayJob(&relayHandler, cfg.OutboxBatchSize, logger)
//	jobManager := jobs.NewJobManager(rollupJob, relayJob, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs log failures and carry on. A run still in progress when the next tick
// fires causes that tick to be skipped.
package jobs
