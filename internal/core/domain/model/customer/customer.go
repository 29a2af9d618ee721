// Package customer provides the Customer aggregate: the business-side record of an
// identity holding the Customer role. Jobs and products reference it by id.
package customer

import (
	"errors"
	"time"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

const (
	UserIDMaxLength  = 450
	NameMaxLength    = 100
	EmailMaxLength   = 100
	PhoneMaxLength   = 20
	AddressMaxLength = 250
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Contact groups the optional contact details of a customer.
type Contact struct {
	Email   string
	Phone   string
	Address string
}

// Customer is keyed by the identity provider's user id; there is exactly one per user.
type Customer struct {
	id        kernel.UUID
	userID    string
	name      string
	contact   Contact
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewCustomer(id kernel.UUID, userID, name string, contact Contact) (*Customer, error) {
	return RestoreCustomer(id, userID, name, contact, time.Now().UTC())
}

func RestoreCustomer(id kernel.UUID, userID, name string, contact Contact, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
		c.setContact(contact),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

// UserID is the subject the identity provider issued for this customer.
func (c *Customer) UserID() string {
	return c.userID
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Contact() Contact {
	return c.contact
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setUserID(userID string) error {
	v, err := kernel.RequiredText("userId", userID, UserIDMaxLength)
	if err != nil {
		return err
	}
	c.userID = v
	return nil
}

func (c *Customer) setName(name string) error {
	v, err := kernel.RequiredText("name", name, NameMaxLength)
	if err != nil {
		return err
	}
	c.name = v
	return nil
}

func (c *Customer) setContact(contact Contact) error {
	email, emailErr := kernel.OptionalText("email", contact.Email, EmailMaxLength)
	phone, phoneErr := kernel.OptionalText("phone", contact.Phone, PhoneMaxLength)
	address, addressErr := kernel.OptionalText("address", contact.Address, AddressMaxLength)
	if err := errors.Join(emailErr, phoneErr, addressErr); err != nil {
		return err
	}
	if email != "" && !looksLikeEmail(email) {
		return errs.NewValueIsInvalidError("email")
	}
	c.contact = Contact{Email: email, Phone: phone, Address: address}
	return nil
}

func looksLikeEmail(s string) bool {
	at := -1
	for i, r := range s {
		if r == '@' {
			if at >= 0 {
				return false
			}
			at = i
		}
	}
	return at > 0 && at < len(s)-1
}
