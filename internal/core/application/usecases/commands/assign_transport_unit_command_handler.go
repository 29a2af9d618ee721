package commands

import (
	"context"

	"eshift/internal/core/domain/model/job"
)

// AssignTransportUnitCommandHandler runs the assignment protocol on a load.
//
// Business rules:
//   - A non-nil unit must exist, otherwise NotFound
//   - Reference and status are written by one versioned UPDATE
//   - Clearing the unit locks the parent job first; a load of a Completed job cannot
//     return to Pending (PreconditionFailed)
//   - A lost optimistic concurrency race is retried once with fresh state
type AssignTransportUnitCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignTransportUnitCommandHandler(uowFactory UoWFactory) AssignTransportUnitCommandHandler {
	return AssignTransportUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignTransportUnitCommandHandler) Handle(ctx context.Context, cmd AssignTransportUnitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.assign(ctx, cmd)
	})
}

func (h AssignTransportUnitCommandHandler) assign(ctx context.Context, cmd AssignTransportUnitCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unitID := cmd.TransportUnitID()
	if unitID != nil {
		if _, err := uow.FleetRepository().GetTransportUnit(ctx, *unitID); err != nil {
			return err
		}
	}

	loads := uow.LoadRepository()
	l, err := loads.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	var parent *job.Job
	if unitID == nil {
		if parent, err = uow.JobRepository().GetForUpdate(ctx, l.JobID()); err != nil {
			return err
		}
	}

	if err = l.AssignTransportUnit(unitID); err != nil {
		return err
	}
	if len(l.DomainEvents()) == 0 {
		return nil
	}
	if parent != nil {
		if err = parent.CheckLoadStatus(l.Status()); err != nil {
			return err
		}
	}

	if err = loads.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
