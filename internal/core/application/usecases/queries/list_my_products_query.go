package queries

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListMyProductsQueryIsNotConstructed = errors.New(
	"ListMyProductsQuery must be created via NewListMyProductsQuery constructor",
)

type ListMyProductsQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListMyProductsQuery(caller identity.Caller) (ListMyProductsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListMyProductsQuery{}, err
	}
	return ListMyProductsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyProductsQuery) Validate() error {
	return q.guard.Validate(ErrListMyProductsQueryIsNotConstructed)
}

func (q ListMyProductsQuery) Caller() identity.Caller {
	return q.caller
}

// ProductSummary is a product as its owner sees it in the product list.
type ProductSummary struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Description string
	WeightKg    decimal.Decimal
	IsValid     bool
	Version     int
}
