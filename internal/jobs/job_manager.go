package jobs

import (
	"fmt"
	"log/slog"

	"parcelflow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderSearchJob     *RiderSearchJob
	riderAssignmentJob *RiderAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	startRiderSearchHandler commands.StartRiderSearchCommandHandler,
	autoAssignRidersHandler commands.AutoAssignRidersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderSearchJob:     NewRiderSearchJob(startRiderSearchHandler, logger),
		riderAssignmentJob: NewRiderAssignmentJob(autoAssignRidersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.riderSearchJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider search job: %w", err)
	}

	if err := jm.riderAssignmentJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.riderSearchJob.Stop()
		return fmt.Errorf("failed to start rider assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.riderAssignmentJob.Stop()
	jm.riderSearchJob.Stop()
}
