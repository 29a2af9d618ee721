package commands

import (
	"errors"
	"fmt"
	"time"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

var ErrAdvanceLoadStatusCommandIsNotConstructed = errors.New(
	"AdvanceLoadStatusCommand must be created via NewAdvanceLoadStatusCommand constructor",
)

// AdvanceLoadStatusCommand moves a load past the assignment protocol: PickedUp, Delivered or Cancelled.
// At is the delivery time and is required only for Delivered.
type AdvanceLoadStatusCommand struct {
	caller identity.Caller
	loadID kernel.UUID
	target load.Status
	at     time.Time

	guard guard.ConstructorGuard
}

func NewAdvanceLoadStatusCommand(
	caller identity.Caller,
	loadID kernel.UUID,
	target load.Status,
	at time.Time,
) (AdvanceLoadStatusCommand, error) {
	var targetErr error
	switch target {
	case load.PickedUp, load.Cancelled:
	case load.Delivered:
		if at.IsZero() {
			targetErr = errs.NewValueIsRequiredError("deliveryDate")
		}
	default:
		targetErr = errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not reachable by advancing a load", target),
		)
	}

	if err := errors.Join(
		caller.RequireRole(identity.RoleAdmin),
		loadID.Validate(),
		targetErr,
	); err != nil {
		return AdvanceLoadStatusCommand{}, err
	}

	return AdvanceLoadStatusCommand{
		caller: caller,
		loadID: loadID,
		target: target,
		at:     at,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLoadStatusCommandIsNotConstructed)
}

func (c AdvanceLoadStatusCommand) Caller() identity.Caller {
	return c.caller
}

func (c AdvanceLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c AdvanceLoadStatusCommand) Target() load.Status {
	return c.target
}

func (c AdvanceLoadStatusCommand) At() time.Time {
	return c.at
}
