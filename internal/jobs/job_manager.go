package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordertrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleTrackerJob *StaleTrackerJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleDeliveriesHandler queries.GetStaleDeliveriesQueryHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleTrackerJob: NewStaleTrackerJob(staleDeliveriesHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleTrackerJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale tracker job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleTrackerJob.Stop()
}
