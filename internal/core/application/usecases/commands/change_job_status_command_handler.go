package commands

import (
	"context"

	"eshift/internal/core/domain/model/load"
)

// ChangeJobStatusCommandHandler applies an administrator's job status change.
// The job row is locked before the statuses of its loads are read, so the completion guard
// cannot interleave with an unassignment (see AssignTransportUnitCommandHandler).
type ChangeJobStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewChangeJobStatusCommandHandler(uowFactory UoWFactory) ChangeJobStatusCommandHandler {
	return ChangeJobStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeJobStatusCommandHandler) Handle(ctx context.Context, cmd ChangeJobStatusCommand) error {
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
	j, err := jobs.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = checkVersion("job", j.ID(), j.Version(), cmd.ExpectedVersion()); err != nil {
		return err
	}

	loads, err := uow.LoadRepository().GetByJobForUpdate(ctx, j.ID())
	if err != nil {
		return err
	}
	statuses := make([]load.Status, 0, len(loads))
	for _, l := range loads {
		statuses = append(statuses, l.Status())
	}

	if err = j.ChangeStatus(cmd.Target(), statuses); err != nil {
		return err
	}
	if len(j.DomainEvents()) == 0 {
		// same status
		return nil
	}

	if err = jobs.Update(ctx, j); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
