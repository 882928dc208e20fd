// Package jobs provides scheduled background tasks for the partner application.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order synchronization.
//
// # Available Jobs
//
// 1. OrderRefreshJob - Runs every five seconds to re-fetch the partner's
// orders from the assignment service and rebuild the local projections
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(fetchOrdersHandler, partnerID, logger)
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
// The refresh job uses the cron expression "*/5 * * * * *" which means it
// runs every five seconds. The periodic full refresh is what reconciles the
// local projections after missed notifications or failed operations.
//
// # Error Handling
//
// Refresh failures are logged at warning level and otherwise ignored;
// the next tick retries and the store keeps its last good contents.
package jobs
