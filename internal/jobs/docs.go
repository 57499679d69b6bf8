// Package jobs provides scheduled background tasks for the delivery
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the platform needs.
//
// # Available Jobs
//
// 1. RiderSearchJob - Runs every ten seconds to move freshly placed orders
// from pending into searching
// 2. RiderAssignmentJob - Runs every ten seconds to match searching
// deliveries with available riders by load and rating
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(startRiderSearchHandler, autoAssignRidersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "*/10 * * * * *" which means they run
// every ten seconds. Deliveries a sweep cannot place simply stay in
// searching and are retried on the next run.
//
// # Error Handling
//
// - Assignment job ignores the expected no-available-riders scenario
// - Search job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
