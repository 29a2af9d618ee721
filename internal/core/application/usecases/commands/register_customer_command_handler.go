package commands

import (
	"context"
	"errors"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/pkg/errs"
)

// RegisterCustomerCommandHandler provisions exactly one Customer per identity.
// A second registration for the same user id is a ConflictError; the unique index on
// customers.user_id rejects the racing case the lookup cannot see.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Caller().UserID(), cmd.Name(), cmd.Contact())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	_, err = repo.GetByUserID(ctx, c.UserID())
	switch {
	case err == nil:
		return errs.NewConflictError("userId", "a customer is already registered for this identity")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
