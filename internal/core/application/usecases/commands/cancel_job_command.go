package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand cancels an in-progress job on behalf of its owner or an administrator.
type CancelJobCommand struct {
	caller identity.Caller
	jobID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelJobCommand(caller identity.Caller, jobID kernel.UUID) (CancelJobCommand, error) {
	if err := errors.Join(caller.Validate(), jobID.Validate()); err != nil {
		return CancelJobCommand{}, err
	}

	return CancelJobCommand{
		caller: caller,
		jobID:  jobID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

func (c CancelJobCommand) Caller() identity.Caller {
	return c.caller
}

func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}
