// Package jobs provides scheduled background tasks for the sales orders
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PurgeDeletedOrdersJob - hard-deletes soft-deleted orders, with their
// items, once they are older than the configured retention
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.PurgeConfig{
//		Schedule:  "0 */10 * * * *",
//		Retention: 720 * time.Hour,
//		BatchSize: 100,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("Failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. A run that is
// still in progress when the next one is due causes that next run to be
// skipped.
//
// # Error Handling
//
// - Each batch is its own transaction; a failed batch leaves earlier batches
// purged and is retried on the next run
// - Failures are logged and counted in the jobs metrics
package jobs
