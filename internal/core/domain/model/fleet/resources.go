package fleet

import (
	"errors"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

const (
	NumberPlateMaxLength     = 50
	ModelMaxLength           = 100
	PersonNameMaxLength      = 100
	LicenseNumberMaxLength   = 50
	PhoneMaxLength           = 20
	ContainerNumberMaxLength = 50
)

var (
	ErrLorryIsNotConstructed     = errors.New("Lorry must be created via NewLorry constructor")
	ErrDriverIsNotConstructed    = errors.New("Driver must be created via NewDriver constructor")
	ErrAssistantIsNotConstructed = errors.New("Assistant must be created via NewAssistant constructor")
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

type Lorry struct {
	id          kernel.UUID
	numberPlate string
	model       string
	guard       guard.ConstructorGuard
}

func NewLorry(id kernel.UUID, numberPlate, model string) (*Lorry, error) {
	plate, plateErr := kernel.RequiredText("numberPlate", numberPlate, NumberPlateMaxLength)
	m, modelErr := kernel.OptionalText("model", model, ModelMaxLength)
	if err := errors.Join(id.Validate(), plateErr, modelErr); err != nil {
		return nil, err
	}
	return &Lorry{id: id, numberPlate: plate, model: m, guard: guard.NewConstructorGuard()}, nil
}

func (l *Lorry) Validate() error {
	if l == nil {
		return ErrLorryIsNotConstructed
	}
	return l.guard.Validate(ErrLorryIsNotConstructed)
}

func (l *Lorry) ID() kernel.UUID {
	return l.id
}

func (l *Lorry) NumberPlate() string {
	return l.numberPlate
}

func (l *Lorry) Model() string {
	return l.model
}

type Driver struct {
	id            kernel.UUID
	name          string
	licenseNumber string
	phone         string
	guard         guard.ConstructorGuard
}

func NewDriver(id kernel.UUID, name, licenseNumber, phone string) (*Driver, error) {
	n, nameErr := kernel.RequiredText("name", name, PersonNameMaxLength)
	license, licenseErr := kernel.RequiredText("licenseNumber", licenseNumber, LicenseNumberMaxLength)
	p, phoneErr := kernel.OptionalText("phone", phone, PhoneMaxLength)
	if err := errors.Join(id.Validate(), nameErr, licenseErr, phoneErr); err != nil {
		return nil, err
	}
	return &Driver{id: id, name: n, licenseNumber: license, phone: p, guard: guard.NewConstructorGuard()}, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

func (d *Driver) Phone() string {
	return d.phone
}

type Assistant struct {
	id    kernel.UUID
	name  string
	phone string
	guard guard.ConstructorGuard
}

func NewAssistant(id kernel.UUID, name, phone string) (*Assistant, error) {
	n, nameErr := kernel.RequiredText("name", name, PersonNameMaxLength)
	p, phoneErr := kernel.OptionalText("phone", phone, PhoneMaxLength)
	if err := errors.Join(id.Validate(), nameErr, phoneErr); err != nil {
		return nil, err
	}
	return &Assistant{id: id, name: n, phone: p, guard: guard.NewConstructorGuard()}, nil
}

func (a *Assistant) Validate() error {
	if a == nil {
		return ErrAssistantIsNotConstructed
	}
	return a.guard.Validate(ErrAssistantIsNotConstructed)
}

func (a *Assistant) ID() kernel.UUID {
	return a.id
}

func (a *Assistant) Name() string {
	return a.name
}

func (a *Assistant) Phone() string {
	return a.phone
}

type Container struct {
	id              kernel.UUID
	containerNumber string
	guard           guard.ConstructorGuard
}

func NewContainer(id kernel.UUID, containerNumber string) (*Container, error) {
	n, numberErr := kernel.RequiredText("containerNumber", containerNumber, ContainerNumberMaxLength)
	if err := errors.Join(id.Validate(), numberErr); err != nil {
		return nil, err
	}
	return &Container{id: id, containerNumber: n, guard: guard.NewConstructorGuard()}, nil
}

func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

func (c *Container) ID() kernel.UUID {
	return c.id
}

func (c *Container) ContainerNumber() string {
	return c.containerNumber
}
