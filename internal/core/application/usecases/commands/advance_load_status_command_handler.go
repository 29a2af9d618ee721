package commands

import (
	"context"

	"eshift/internal/core/domain/model/load"
)

// AdvanceLoadStatusCommandHandler drives a load through pickup, delivery or cancellation.
// Retried once on Conflict.
type AdvanceLoadStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewAdvanceLoadStatusCommandHandler(uowFactory UoWFactory) AdvanceLoadStatusCommandHandler {
	return AdvanceLoadStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AdvanceLoadStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceLoadStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.advance(ctx, cmd)
	})
}

func (h AdvanceLoadStatusCommandHandler) advance(ctx context.Context, cmd AdvanceLoadStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loads := uow.LoadRepository()
	l, err := loads.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case load.PickedUp:
		err = l.MarkPickedUp()
	case load.Delivered:
		err = l.MarkDelivered(cmd.At())
	default:
		err = l.Cancel()
	}
	if err != nil {
		return err
	}

	if err = loads.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
