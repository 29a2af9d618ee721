package customer_test

import (
	"strings"
	"testing"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should trim and keep contact details", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "auth0|42", "  Nimal Perera ", customer.Contact{
			Email:   "nimal@example.com",
			Phone:   "+94 77 123 4567",
			Address: "12 Galle Road",
		})

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Nimal Perera", c.Name())
		assert.Equal(t, "auth0|42", c.UserID())
		assert.Equal(t, "nimal@example.com", c.Contact().Email)
		assert.False(t, c.CreatedAt().IsZero())
	})

	t.Run("should accept empty contact", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "u1", "Nimal", customer.Contact{})
		require.NoError(t, err)
	})

	t.Run("should require user id and name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), " ", "", customer.Contact{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should reject malformed email and long phone", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "u1", "Nimal", customer.Contact{Email: "nimal.example.com"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = customer.NewCustomer(kernel.NewUUID(), "u1", "Nimal", customer.Contact{Phone: strings.Repeat("1", 21)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "phone")
	})
}

func TestCustomer_ZeroValue(t *testing.T) {
	var c customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}
