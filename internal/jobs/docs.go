// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. DeliveryPlanningJob - Runs every second to plan requested deliveries with their logistics variant
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(planDeliveriesHandler, logger)
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
// The planning job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency ensures newly registered deliveries receive
// transport instructions without noticeable delay.
//
// # Error Handling
//
// - Planning job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
