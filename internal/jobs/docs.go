// Package jobs provides scheduled background tasks for the eshift back office.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds) and only
// report; they never change jobs, loads or products.
//
// # Available Jobs
//
// 1. DashboardReportJob - logs the job counts per status, by default every minute
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dashboardHandler, cfg.Jobs.DashboardReportSpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. A job that fails to start
// fails StartAll.
package jobs
