// Package jobs provides scheduled background tasks for the order tracking
// system, implemented with github.com/robfig/cron/v3.
//
// The only job today is StaleTrackerJob, which runs every minute and logs a
// warning for every order that is out for delivery but has not received a
// location sample within the configured threshold. Jobs are managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(staleDeliveriesHandler, 5*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
