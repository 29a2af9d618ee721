// Package product provides the Product aggregate: an itemized piece of cargo owned by a
// customer. Loads reference products through loadproduct links.
//
// A product starts unvalidated; only an administrator flips its IsValid flag.
package product

import (
	"errors"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	NameMaxLength        = 100
	CategoryMaxLength    = 50
	DescriptionMaxLength = 500
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// MaxWeightKg is the heaviest unit weight a product may declare.
	MaxWeightKg = decimal.NewFromInt(1000)
)

// Details are the customer-supplied descriptive fields of a product.
type Details struct {
	Name        string
	Category    string
	Description string
}

type Product struct {
	id         kernel.UUID
	customerID kernel.UUID
	details    Details
	weight     kernel.Weight
	isValid    bool
	version    int

	guard guard.ConstructorGuard
	events.Recorder
}

// NewProduct creates an unvalidated product owned by customerID.
func NewProduct(id, customerID kernel.UUID, details Details, weight kernel.Weight) (*Product, error) {
	p := &Product{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCustomerID(customerID),
		p.setDetails(details),
		p.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestoreProduct(
	id, customerID kernel.UUID,
	details Details,
	weight kernel.Weight,
	isValid bool,
	version int,
) (*Product, error) {
	p, err := NewProduct(id, customerID, details, weight)
	if err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version")
	}
	p.isValid = isValid
	p.version = version
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) CustomerID() kernel.UUID {
	return p.customerID
}

func (p *Product) Details() Details {
	return p.details
}

func (p *Product) Weight() kernel.Weight {
	return p.weight
}

func (p *Product) IsValid() bool {
	return p.isValid
}

func (p *Product) Version() int {
	return p.version
}

func (p *Product) IsOwnedBy(customerID kernel.UUID) bool {
	return p.customerID.IsEqual(customerID)
}

// ToggleValidation flips IsValid and returns the new value.
func (p *Product) ToggleValidation() bool {
	p.isValid = !p.isValid
	p.Record(events.NewEvent(events.ProductValidationToggled, p.id, map[string]any{
		"customerId": p.customerID.String(),
		"isValid":    p.isValid,
	}))
	return p.isValid
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	p.customerID = customerID
	return nil
}

func (p *Product) setDetails(d Details) error {
	name, nameErr := kernel.RequiredText("name", d.Name, NameMaxLength)
	category, categoryErr := kernel.OptionalText("category", d.Category, CategoryMaxLength)
	description, descriptionErr := kernel.OptionalText("description", d.Description, DescriptionMaxLength)
	if err := errors.Join(nameErr, categoryErr, descriptionErr); err != nil {
		return err
	}
	p.details = Details{Name: name, Category: category, Description: description}
	return nil
}

func (p *Product) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.Kg().GreaterThan(MaxWeightKg) {
		return errs.NewValueIsOutOfRangeError("weightKg", weight.String(), kernel.MinWeightKg.String(), MaxWeightKg.String())
	}
	p.weight = weight
	return nil
}
