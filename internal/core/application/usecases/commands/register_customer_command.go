package commands

import (
	"errors"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand provisions the Customer row of a newly registered identity.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand(caller, kernel.NewUUID(), "Nimal Perera",
//	    customer.Contact{Email: "nimal@example.lk", Phone: "+94 77 123 4567"})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	customerID kernel.UUID
	name       string
	contact    customer.Contact

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(
	caller identity.Caller,
	customerID kernel.UUID,
	name string,
	contact customer.Contact,
) (RegisterCustomerCommand, error) {
	c := RegisterCustomerCommand{
		name:    name,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setCaller(caller),
		c.setCustomerID(customerID),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return c, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Caller() identity.Caller {
	return c.caller
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Contact() customer.Contact {
	return c.contact
}

func (c *RegisterCustomerCommand) setCaller(caller identity.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RegisterCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
