package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListMyJobsQueryHandler struct {
	db *gorm.DB
}

func NewListMyJobsQueryHandler(db *gorm.DB) ListMyJobsQueryHandler {
	return ListMyJobsQueryHandler{db: db}
}

func (h ListMyJobsQueryHandler) Handle(ctx context.Context, query ListMyJobsQuery) ([]JobSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customerID, err := customerIDFor(ctx, h.db, query.Caller())
	if err != nil {
		return nil, err
	}

	var rows []jobRow
	err = h.db.WithContext(ctx).
		Table("jobs").
		Select(jobSummaryColumns).
		Where("jobs.customer_id = ?", customerID).
		Order("jobs.job_date DESC, jobs.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toSummaries(rows)
}
