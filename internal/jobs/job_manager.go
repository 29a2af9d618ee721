package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dashboardReportJob *DashboardReportJob
}

// NewJobManager wires the scheduled jobs. An empty dashboardSpec disables the dashboard report.
func NewJobManager(dashboard DashboardReader, dashboardSpec string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if dashboardSpec != "" {
		jm.dashboardReportJob = NewDashboardReportJob(dashboard, dashboardSpec, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.dashboardReportJob == nil {
		return nil
	}
	if err := jm.dashboardReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard report job: %w", err)
	}
	return nil
}

// StopAll stops all jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.dashboardReportJob != nil {
		jm.dashboardReportJob.Stop()
	}
}
