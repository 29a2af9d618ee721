package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListJobsQueryHandler struct {
	db *gorm.DB
}

func NewListJobsQueryHandler(db *gorm.DB) ListJobsQueryHandler {
	return ListJobsQueryHandler{db: db}
}

func (h ListJobsQueryHandler) Handle(ctx context.Context, query ListJobsQuery) (JobPage, error) {
	if err := query.Validate(); err != nil {
		return JobPage{}, err
	}

	filtered := func() *gorm.DB {
		db := h.db.WithContext(ctx).Table("jobs")
		if s := query.Status(); s != nil {
			db = db.Where("jobs.status = ?", int(*s))
		}
		return db
	}

	page := JobPage{Page: query.Page(), PageSize: query.PageSize()}
	if err := filtered().Count(&page.Total).Error; err != nil {
		return JobPage{}, err
	}

	var rows []jobRow
	err := filtered().
		Select(jobSummaryColumns).
		Order("jobs.job_date DESC, jobs.id").
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Scan(&rows).Error
	if err != nil {
		return JobPage{}, err
	}

	items, err := toSummaries(rows)
	if err != nil {
		return JobPage{}, err
	}
	page.Items = items

	return page, nil
}
