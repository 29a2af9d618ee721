package queries

import (
	"context"

	"eshift/internal/core/domain/model/job"

	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle counts jobs with one grouped read.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	var rows []struct {
		Status int
		Count  int64
	}
	err := h.db.WithContext(ctx).
		Table("jobs").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	for _, r := range rows {
		d.TotalJobs += r.Count
		switch job.Status(r.Status) {
		case job.InProgress:
			d.InProgressJobs = r.Count
		case job.Completed:
			d.CompletedJobs = r.Count
		case job.Cancelled:
			d.CancelledJobs = r.Count
		case job.Unknown:
		}
	}

	return d, nil
}
