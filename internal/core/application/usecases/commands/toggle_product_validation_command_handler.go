package commands

import (
	"context"
)

// ToggleProductValidationCommandHandler flips IsValid. A concurrent toggle makes the first
// attempt lose the version check; the retry flips the fresh value so no toggle is lost.
type ToggleProductValidationCommandHandler struct {
	uowFactory UoWFactory
}

func NewToggleProductValidationCommandHandler(uowFactory UoWFactory) ToggleProductValidationCommandHandler {
	return ToggleProductValidationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ToggleProductValidationCommandHandler) Handle(ctx context.Context, cmd ToggleProductValidationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.toggle(ctx, cmd)
	})
}

func (h ToggleProductValidationCommandHandler) toggle(ctx context.Context, cmd ToggleProductValidationCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	p, err := products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	p.ToggleValidation()

	if err = products.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
