package jobs

import (
	"context"
	"log/slog"
	"sync"

	"eshift/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDashboardReportSpec runs the report at the start of every minute.
const DefaultDashboardReportSpec = "0 * * * * *"

// DashboardReader is satisfied by queries.GetDashboardQueryHandler.
type DashboardReader interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.Dashboard, error)
}

// DashboardReportJob logs the job counts per status on a cron schedule.
// It only reads; no domain state is changed.
type DashboardReportJob struct {
	reader DashboardReader
	spec   string
	cron   *cron.Cron
	logger *slog.Logger

	mu   sync.Mutex
	last queries.Dashboard
}

// NewDashboardReportJob creates the job. An empty spec falls back to DefaultDashboardReportSpec.
func NewDashboardReportJob(reader DashboardReader, spec string, logger *slog.Logger) *DashboardReportJob {
	if spec == "" {
		spec = DefaultDashboardReportSpec
	}
	return &DashboardReportJob{
		reader: reader,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "dashboard_report_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *DashboardReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard report job started", "spec", j.spec)
	return nil
}

// Stop waits for a running report to finish.
func (j *DashboardReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dashboard report job stopped")
}

// Run reads the dashboard once and logs it. Failures are logged and the previous
// snapshot is kept.
func (j *DashboardReportJob) Run(ctx context.Context) {
	d, err := j.reader.Handle(ctx, queries.NewSystemDashboardQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard report failed", "error", err)
		return
	}

	j.mu.Lock()
	j.last = d
	j.mu.Unlock()

	j.logger.InfoContext(ctx, "Dashboard report",
		"total_jobs", d.TotalJobs,
		"in_progress_jobs", d.InProgressJobs,
		"completed_jobs", d.CompletedJobs,
		"cancelled_jobs", d.CancelledJobs,
	)
}

// Last returns the most recent successful snapshot.
func (j *DashboardReportJob) Last() queries.Dashboard {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last
}
