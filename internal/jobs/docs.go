// Package jobs provides scheduled background tasks for the rates platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the quoting service.
//
// # Available Jobs
//
// 1. ShipmentBookingJob - Runs every ten seconds to quote pending shipments and book the cheapest courier
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(bookPendingShipmentsHandler, logger)
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
// The booking sweep uses the cron expression "*/10 * * * * *", running every
// ten seconds. Shipments whose lane has no coverage simply stay pending and
// are retried on the next sweep, so a tighter schedule buys nothing.
//
// # Error Handling
//
// - A missing default pricing plan is logged as a warning and skipped
// - All other sweep errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
