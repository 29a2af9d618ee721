// Package loadproduct provides the link between a load and a product with a quantity.
//
// A link has its own surrogate id; the same (load, product) pair may be linked more than once.
package loadproduct

import (
	"errors"
	"fmt"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

var ErrLoadProductIsNotConstructed = errors.New("LoadProduct must be created via NewLoadProduct constructor")

type LoadProduct struct {
	id        kernel.UUID
	loadID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewLoadProduct(id, loadID, productID kernel.UUID, quantity int) (*LoadProduct, error) {
	lp := &LoadProduct{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		lp.setID(id),
		lp.setLoadID(loadID),
		lp.setProductID(productID),
		lp.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return lp, nil
}

func (lp *LoadProduct) Validate() error {
	if lp == nil {
		return ErrLoadProductIsNotConstructed
	}
	return lp.guard.Validate(ErrLoadProductIsNotConstructed)
}

func (lp *LoadProduct) ID() kernel.UUID {
	return lp.id
}

func (lp *LoadProduct) LoadID() kernel.UUID {
	return lp.loadID
}

func (lp *LoadProduct) ProductID() kernel.UUID {
	return lp.productID
}

func (lp *LoadProduct) Quantity() int {
	return lp.quantity
}

func (lp *LoadProduct) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	lp.id = id
	return nil
}

func (lp *LoadProduct) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	lp.loadID = id
	return nil
}

func (lp *LoadProduct) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	lp.productID = id
	return nil
}

func (lp *LoadProduct) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	lp.quantity = quantity
	return nil
}
