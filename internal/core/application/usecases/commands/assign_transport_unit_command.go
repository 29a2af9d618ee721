package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrAssignTransportUnitCommandIsNotConstructed = errors.New(
	"AssignTransportUnitCommand must be created via NewAssignTransportUnitCommand constructor",
)

// AssignTransportUnitCommand binds a transport unit to a load, or clears the binding when
// the unit id is nil.
//
// Example:
//
//	unitID := kernel.NewUUID()
//	assign, _ := NewAssignTransportUnitCommand(admin, loadID, &unitID)
//	clear, _ := NewAssignTransportUnitCommand(admin, loadID, nil)
type AssignTransportUnitCommand struct {
	caller          identity.Caller
	loadID          kernel.UUID
	transportUnitID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignTransportUnitCommand(
	caller identity.Caller,
	loadID kernel.UUID,
	transportUnitID *kernel.UUID,
) (AssignTransportUnitCommand, error) {
	var unitErr error
	var unitID *kernel.UUID
	if transportUnitID != nil {
		unitErr = transportUnitID.Validate()
		id := *transportUnitID
		unitID = &id
	}

	if err := errors.Join(
		caller.RequireRole(identity.RoleAdmin),
		loadID.Validate(),
		unitErr,
	); err != nil {
		return AssignTransportUnitCommand{}, err
	}

	return AssignTransportUnitCommand{
		caller:          caller,
		loadID:          loadID,
		transportUnitID: unitID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c AssignTransportUnitCommand) Validate() error {
	return c.guard.Validate(ErrAssignTransportUnitCommandIsNotConstructed)
}

func (c AssignTransportUnitCommand) Caller() identity.Caller {
	return c.caller
}

func (c AssignTransportUnitCommand) LoadID() kernel.UUID {
	return c.loadID
}

// TransportUnitID is nil when the command clears the assignment.
func (c AssignTransportUnitCommand) TransportUnitID() *kernel.UUID {
	if c.transportUnitID == nil {
		return nil
	}
	id := *c.transportUnitID
	return &id
}
