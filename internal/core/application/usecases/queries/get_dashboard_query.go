package queries

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery counts jobs per status for the administrator dashboard.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(caller identity.Caller) (GetDashboardQuery, error) {
	if err := caller.RequireRole(identity.RoleAdmin); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}, nil
}

// NewSystemDashboardQuery is used by scheduled reporting, which runs without a caller.
func NewSystemDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

type Dashboard struct {
	TotalJobs      int64
	InProgressJobs int64
	CompletedJobs  int64
	CancelledJobs  int64
}
