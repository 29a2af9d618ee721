package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrToggleProductValidationCommandIsNotConstructed = errors.New(
	"ToggleProductValidationCommand must be created via NewToggleProductValidationCommand constructor",
)

// ToggleProductValidationCommand flips the administrator's validation mark on a product.
type ToggleProductValidationCommand struct {
	caller    identity.Caller
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleProductValidationCommand(
	caller identity.Caller,
	productID kernel.UUID,
) (ToggleProductValidationCommand, error) {
	if err := errors.Join(caller.RequireRole(identity.RoleAdmin), productID.Validate()); err != nil {
		return ToggleProductValidationCommand{}, err
	}

	return ToggleProductValidationCommand{
		caller:    caller,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleProductValidationCommand) Validate() error {
	return c.guard.Validate(ErrToggleProductValidationCommandIsNotConstructed)
}

func (c ToggleProductValidationCommand) Caller() identity.Caller {
	return c.caller
}

func (c ToggleProductValidationCommand) ProductID() kernel.UUID {
	return c.productID
}
