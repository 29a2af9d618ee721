package commands

import (
	"context"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/services"
	"eshift/internal/pkg/errs"
)

// DeleteEntityCommandHandler plans a removal with services.RemovalPlanner and executes it in
// the same transaction. A blocked plan is a ConflictError naming the blocking dependents and
// nothing is removed.
//
// Administrators may delete any row; a customer may delete only their own products.
type DeleteEntityCommandHandler struct {
	uowFactory UoWFactory
	planner    services.RemovalPlanner
}

func NewDeleteEntityCommandHandler(uowFactory UoWFactory) DeleteEntityCommandHandler {
	return DeleteEntityCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRemovalPlanner(),
	}
}

func (h DeleteEntityCommandHandler) Handle(ctx context.Context, cmd DeleteEntityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	caller := cmd.Caller()
	if !caller.IsAdmin() && cmd.Kind() != services.KindProduct {
		return caller.RequireRole(identity.RoleAdmin)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if !caller.IsAdmin() {
		owner, err := resolveCustomer(ctx, uow.CustomerRepository(), caller)
		if err != nil {
			return err
		}
		p, err := uow.ProductRepository().Get(ctx, cmd.ID())
		if err != nil {
			return err
		}
		if !p.IsOwnedBy(owner.ID()) {
			return errs.NewUnauthorizedError("productId")
		}
	}

	store := uow.RemovalStore()
	plan, err := h.planner.Plan(ctx, store, cmd.Kind(), cmd.ID())
	if err != nil {
		return err
	}

	if err = store.Execute(ctx, plan); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
