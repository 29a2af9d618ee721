package commands

import (
	"context"

	"eshift/internal/pkg/errs"
)

// UpdateJobDetailsCommandHandler lets the owning customer edit an in-progress job.
// The edit must be based on the stored version. Conflicts are surfaced to the caller,
// who must reload and resubmit.
type UpdateJobDetailsCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateJobDetailsCommandHandler(uowFactory UoWFactory) UpdateJobDetailsCommandHandler {
	return UpdateJobDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateJobDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateJobDetailsCommand) error {
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

	owner, err := resolveCustomer(ctx, uow.CustomerRepository(), cmd.Caller())
	if err != nil {
		return err
	}

	jobs := uow.JobRepository()
	j, err := jobs.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if !j.IsOwnedBy(owner.ID()) {
		return errs.NewUnauthorizedError("jobId")
	}
	if err = checkVersion("job", j.ID(), j.Version(), cmd.ExpectedVersion()); err != nil {
		return err
	}

	if err = j.UpdateDetails(cmd.StartLocation(), cmd.Destination(), cmd.JobDate()); err != nil {
		return err
	}

	if err = jobs.Update(ctx, j); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
