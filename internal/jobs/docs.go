// Package jobs provides scheduled background tasks for the fleet custody
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DocumentExpiryJob - Runs hourly to report vehicle documents expiring
// within the configured window (circulation permit, technical review,
// insurance, gases review)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expiringDocumentsHandler, windowDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep is read-only; failures are logged and the next run retries from
// scratch. Each due document is logged at WARN level with the vehicle plate
// and the expiry date.
package jobs
