package commands

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrRegisterFleetResourceCommandIsNotConstructed = errors.New(
	"fleet resource commands must be created via their constructors",
)

// fleetResource is the administrator identity and id shared by the resource registrations.
// Field rules of each resource are enforced by the fleet constructors in the handler.
type fleetResource struct {
	caller identity.Caller
	id     kernel.UUID

	guard guard.ConstructorGuard
}

func newFleetResource(caller identity.Caller, id kernel.UUID) (fleetResource, error) {
	if err := errors.Join(caller.RequireRole(identity.RoleAdmin), id.Validate()); err != nil {
		return fleetResource{}, err
	}
	return fleetResource{caller: caller, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (r fleetResource) Validate() error {
	return r.guard.Validate(ErrRegisterFleetResourceCommandIsNotConstructed)
}

func (r fleetResource) Caller() identity.Caller {
	return r.caller
}

func (r fleetResource) ID() kernel.UUID {
	return r.id
}

type RegisterLorryCommand struct {
	fleetResource
	NumberPlate string
	Model       string
}

func NewRegisterLorryCommand(caller identity.Caller, id kernel.UUID, numberPlate, model string) (RegisterLorryCommand, error) {
	r, err := newFleetResource(caller, id)
	if err != nil {
		return RegisterLorryCommand{}, err
	}
	return RegisterLorryCommand{fleetResource: r, NumberPlate: numberPlate, Model: model}, nil
}

type RegisterDriverCommand struct {
	fleetResource
	Name          string
	LicenseNumber string
	Phone         string
}

func NewRegisterDriverCommand(
	caller identity.Caller,
	id kernel.UUID,
	name, licenseNumber, phone string,
) (RegisterDriverCommand, error) {
	r, err := newFleetResource(caller, id)
	if err != nil {
		return RegisterDriverCommand{}, err
	}
	return RegisterDriverCommand{fleetResource: r, Name: name, LicenseNumber: licenseNumber, Phone: phone}, nil
}

type RegisterAssistantCommand struct {
	fleetResource
	Name  string
	Phone string
}

func NewRegisterAssistantCommand(caller identity.Caller, id kernel.UUID, name, phone string) (RegisterAssistantCommand, error) {
	r, err := newFleetResource(caller, id)
	if err != nil {
		return RegisterAssistantCommand{}, err
	}
	return RegisterAssistantCommand{fleetResource: r, Name: name, Phone: phone}, nil
}

type RegisterContainerCommand struct {
	fleetResource
	ContainerNumber string
}

func NewRegisterContainerCommand(caller identity.Caller, id kernel.UUID, containerNumber string) (RegisterContainerCommand, error) {
	r, err := newFleetResource(caller, id)
	if err != nil {
		return RegisterContainerCommand{}, err
	}
	return RegisterContainerCommand{fleetResource: r, ContainerNumber: containerNumber}, nil
}
