package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrCreateTransportUnitCommandIsNotConstructed = errors.New(
	"CreateTransportUnitCommand must be created via NewCreateTransportUnitCommand constructor",
)

// CreateTransportUnitCommand bundles existing resources into a transport unit. The assistant is optional.
type CreateTransportUnitCommand struct {
	caller      identity.Caller
	unitID      kernel.UUID
	unitNumber  string
	lorryID     kernel.UUID
	driverID    kernel.UUID
	assistantID *kernel.UUID
	containerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateTransportUnitCommand(
	caller identity.Caller,
	unitID kernel.UUID,
	unitNumber string,
	lorryID, driverID kernel.UUID,
	assistantID *kernel.UUID,
	containerID kernel.UUID,
) (CreateTransportUnitCommand, error) {
	if err := errors.Join(caller.RequireRole(identity.RoleAdmin), unitID.Validate()); err != nil {
		return CreateTransportUnitCommand{}, err
	}

	var assistant *kernel.UUID
	if assistantID != nil {
		id := *assistantID
		assistant = &id
	}

	return CreateTransportUnitCommand{
		caller:      caller,
		unitID:      unitID,
		unitNumber:  unitNumber,
		lorryID:     lorryID,
		driverID:    driverID,
		assistantID: assistant,
		containerID: containerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTransportUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportUnitCommandIsNotConstructed)
}

func (c CreateTransportUnitCommand) Caller() identity.Caller {
	return c.caller
}

func (c CreateTransportUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

func (c CreateTransportUnitCommand) UnitNumber() string {
	return c.unitNumber
}

func (c CreateTransportUnitCommand) LorryID() kernel.UUID {
	return c.lorryID
}

func (c CreateTransportUnitCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateTransportUnitCommand) AssistantID() *kernel.UUID {
	if c.assistantID == nil {
		return nil
	}
	id := *c.assistantID
	return &id
}

func (c CreateTransportUnitCommand) ContainerID() kernel.UUID {
	return c.containerID
}
