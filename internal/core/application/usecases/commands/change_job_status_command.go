package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrChangeJobStatusCommandIsNotConstructed = errors.New(
	"ChangeJobStatusCommand must be created via NewChangeJobStatusCommand constructor",
)

// ChangeJobStatusCommand is the administrator's status transition of a job, made against
// the job version the administrator last read.
type ChangeJobStatusCommand struct {
	caller          identity.Caller
	jobID           kernel.UUID
	target          job.Status
	expectedVersion int

	guard guard.ConstructorGuard
}

func NewChangeJobStatusCommand(
	caller identity.Caller,
	jobID kernel.UUID,
	target job.Status,
	expectedVersion int,
) (ChangeJobStatusCommand, error) {
	if err := errors.Join(
		caller.RequireRole(identity.RoleAdmin),
		jobID.Validate(),
		target.Validate(),
		validateExpectedVersion(expectedVersion),
	); err != nil {
		return ChangeJobStatusCommand{}, err
	}

	return ChangeJobStatusCommand{
		caller:          caller,
		jobID:           jobID,
		target:          target,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeJobStatusCommandIsNotConstructed)
}

func (c ChangeJobStatusCommand) Caller() identity.Caller {
	return c.caller
}

func (c ChangeJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c ChangeJobStatusCommand) Target() job.Status {
	return c.target
}

func (c ChangeJobStatusCommand) ExpectedVersion() int {
	return c.expectedVersion
}
