// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the laundry workflow.
//
// # Available Jobs
//
// 1. DeliverySchedulingJob - Runs every five seconds to open delivery errands
// for completed orders that do not have one yet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(scheduleDeliveriesHandler, logger)
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
// The scheduling job uses the cron expression "*/5 * * * * *" and runs every
// five seconds. Delivery creation is not latency sensitive, so a five second
// sweep is frequent enough.
//
// # Error Handling
//
// - ErrNoCompletedOrdersFound means an empty sweep and is not logged
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
