package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcelflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderAssignmentJob manages the scheduled auto-assignment sweep. Runs every
// ten seconds to match searching deliveries with available riders.
type RiderAssignmentJob struct {
	handler commands.AutoAssignRidersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRiderAssignmentJob creates a new job for the auto-assignment sweep.
func NewRiderAssignmentJob(handler commands.AutoAssignRidersCommandHandler, logger *slog.Logger) *RiderAssignmentJob {
	return &RiderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rider_assignment_job"),
	}
}

// Start begins the auto-assignment sweep on its ten second schedule.
func (j *RiderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignRidersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoAvailableRiders) {
				j.logger.ErrorContext(ctx, "Rider assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider assignment job started (running every 10 seconds)")
	return nil
}

// Stop stops the auto-assignment sweep.
func (j *RiderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider assignment job stopped")
}
