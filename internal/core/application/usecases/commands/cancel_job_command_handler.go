package commands

import (
	"context"

	"eshift/internal/pkg/errs"
)

// CancelJobCommandHandler cancels a job. Administrators may cancel any job,
// customers only their own.
type CancelJobCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelJobCommandHandler(uowFactory UoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobs := uow.JobRepository()
	j, err := jobs.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !cmd.Caller().IsAdmin() {
		owner, ownerErr := resolveCustomer(ctx, uow.CustomerRepository(), cmd.Caller())
		if ownerErr != nil {
			return ownerErr
		}
		if !j.IsOwnedBy(owner.ID()) {
			return errs.NewUnauthorizedError("jobId")
		}
	}

	if err = j.Cancel(); err != nil {
		return err
	}

	if err = jobs.Update(ctx, j); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
