package queries

import (
	"errors"
	"math"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100

	// MaxPage keeps the row offset within an int32 for any page size.
	MaxPage = math.MaxInt32 / MaxPageSize
)

var ErrListJobsQueryIsNotConstructed = errors.New(
	"ListJobsQuery must be created via NewListJobsQuery constructor",
)

// ListJobsQuery is the administrator's paged job list, newest job date first.
//
// Example:
//
//	inProgress := job.InProgress
//	q, err := NewListJobsQuery(admin, &inProgress, 1, 0) // page 1, default page size
type ListJobsQuery struct {
	caller   identity.Caller
	status   *job.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListJobsQuery builds the query. page is 1..MaxPage; a pageSize of 0 selects DefaultPageSize.
func NewListJobsQuery(caller identity.Caller, status *job.Status, page, pageSize int) (ListJobsQuery, error) {
	var statusErr error
	var filter *job.Status
	if status != nil {
		statusErr = status.Validate()
		s := *status
		filter = &s
	}

	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	var pageErr, sizeErr error
	if page < 1 || page > MaxPage {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, MaxPage)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize)
	}

	if err := errors.Join(caller.RequireRole(identity.RoleAdmin), statusErr, pageErr, sizeErr); err != nil {
		return ListJobsQuery{}, err
	}

	return ListJobsQuery{
		caller:   caller,
		status:   filter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

// Status is the optional filter; nil lists every status.
func (q ListJobsQuery) Status() *job.Status {
	return q.status
}

func (q ListJobsQuery) Page() int {
	return q.page
}

func (q ListJobsQuery) PageSize() int {
	return q.pageSize
}

// JobPage is one page of jobs plus the number of jobs matching the filter.
type JobPage struct {
	Items    []JobSummary
	Total    int64
	Page     int
	PageSize int
}

// Pages is the number of pages Total spans.
func (p JobPage) Pages() int {
	if p.PageSize == 0 {
		return 0
	}
	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}
