package queries

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrGetMyJobQueryIsNotConstructed = errors.New(
	"GetMyJobQuery must be created via NewGetMyJobQuery constructor",
)

// GetMyJobQuery reads one of the caller's jobs with its loads and products.
// A job of another customer is reported as not found.
type GetMyJobQuery struct {
	caller identity.Caller
	jobID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMyJobQuery(caller identity.Caller, jobID kernel.UUID) (GetMyJobQuery, error) {
	if err := errors.Join(caller.Validate(), jobID.Validate()); err != nil {
		return GetMyJobQuery{}, err
	}
	return GetMyJobQuery{caller: caller, jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyJobQuery) Validate() error {
	return q.guard.Validate(ErrGetMyJobQueryIsNotConstructed)
}

func (q GetMyJobQuery) Caller() identity.Caller {
	return q.caller
}

func (q GetMyJobQuery) JobID() kernel.UUID {
	return q.jobID
}
