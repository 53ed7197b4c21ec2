package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	purgeDeletedOrdersJob *PurgeDeletedOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler PurgeHandler,
	purgeConfig PurgeConfig,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		purgeDeletedOrdersJob: NewPurgeDeletedOrdersJob(purgeHandler, purgeConfig, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.purgeDeletedOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start purge deleted orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.purgeDeletedOrdersJob.Stop()
}
