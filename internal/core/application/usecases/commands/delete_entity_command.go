package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/services"
	"eshift/internal/pkg/guard"
)

var ErrDeleteEntityCommandIsNotConstructed = errors.New(
	"DeleteEntityCommand must be created via NewDeleteEntityCommand constructor",
)

// DeleteEntityCommand removes one row of any kind under the deletion policy.
//
// Example:
//
//	cmd, err := NewDeleteEntityCommand(admin, "transport_unit", unitID)
type DeleteEntityCommand struct {
	caller identity.Caller
	kind   services.Kind
	id     kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteEntityCommand(caller identity.Caller, kind string, id kernel.UUID) (DeleteEntityCommand, error) {
	k, kindErr := services.ParseKind(kind)
	if err := errors.Join(caller.Validate(), kindErr, id.Validate()); err != nil {
		return DeleteEntityCommand{}, err
	}

	return DeleteEntityCommand{
		caller: caller,
		kind:   k,
		id:     id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteEntityCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEntityCommandIsNotConstructed)
}

func (c DeleteEntityCommand) Caller() identity.Caller {
	return c.caller
}

func (c DeleteEntityCommand) Kind() services.Kind {
	return c.kind
}

func (c DeleteEntityCommand) ID() kernel.UUID {
	return c.id
}
