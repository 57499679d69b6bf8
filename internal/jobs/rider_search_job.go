package jobs

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderSearchJob manages the scheduled dispatch sweep. Runs every ten
// seconds to move freshly placed orders from pending into searching.
type RiderSearchJob struct {
	handler commands.StartRiderSearchCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRiderSearchJob creates a new job for the dispatch sweep.
func NewRiderSearchJob(handler commands.StartRiderSearchCommandHandler, logger *slog.Logger) *RiderSearchJob {
	return &RiderSearchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rider_search_job"),
	}
}

// Start begins the dispatch sweep on its ten second schedule.
func (j *RiderSearchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewStartRiderSearchCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rider search job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider search job started (running every 10 seconds)")
	return nil
}

// Stop stops the dispatch sweep.
func (j *RiderSearchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider search job stopped")
}
