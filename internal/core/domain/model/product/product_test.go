package product_test

import (
	"testing"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/product"
	"eshift/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weight(t *testing.T, kg int64, maxKg decimal.Decimal) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight("weightKg", decimal.NewFromInt(kg), maxKg)
	require.NoError(t, err)
	return w
}

func TestNewProduct(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("should create unvalidated product", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), owner, product.Details{Name: "Sofa", Category: "Furniture"}, weight(t, 45, product.MaxWeightKg))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.False(t, p.IsValid())
		assert.Equal(t, 1, p.Version())
		assert.True(t, p.IsOwnedBy(owner))
		assert.Equal(t, "Sofa", p.Details().Name)
	})

	t.Run("should reject weight over product limit", func(t *testing.T) {
		heavy := weight(t, 1500, decimal.NewFromInt(10000))

		_, err := product.NewProduct(kernel.NewUUID(), owner, product.Details{Name: "Piano"}, heavy)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require name and weight", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), owner, product.Details{}, kernel.Weight{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
	})
}

func TestProduct_ToggleValidation(t *testing.T) {
	p, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), product.Details{Name: "Fridge"}, weight(t, 60, product.MaxWeightKg), false, 4)
	require.NoError(t, err)

	assert.True(t, p.ToggleValidation())
	assert.False(t, p.ToggleValidation())

	require.Len(t, p.DomainEvents(), 2)
	assert.Equal(t, events.ProductValidationToggled, p.DomainEvents()[0].Type())
	assert.Equal(t, true, p.DomainEvents()[0].Payload()["isValid"])
	assert.Equal(t, 4, p.Version())
}

func TestRestoreProduct_RejectsZeroVersion(t *testing.T) {
	_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), product.Details{Name: "Fridge"}, weight(t, 60, product.MaxWeightKg), true, 0)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}
