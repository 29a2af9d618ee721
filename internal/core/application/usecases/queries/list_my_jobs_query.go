package queries

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/pkg/guard"
)

var ErrListMyJobsQueryIsNotConstructed = errors.New(
	"ListMyJobsQuery must be created via NewListMyJobsQuery constructor",
)

// ListMyJobsQuery lists the caller's own jobs, newest job date first.
type ListMyJobsQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListMyJobsQuery(caller identity.Caller) (ListMyJobsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListMyJobsQuery{}, err
	}
	return ListMyJobsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyJobsQuery) Validate() error {
	return q.guard.Validate(ErrListMyJobsQueryIsNotConstructed)
}

func (q ListMyJobsQuery) Caller() identity.Caller {
	return q.caller
}
