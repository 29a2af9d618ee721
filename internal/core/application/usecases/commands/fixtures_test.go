package commands_test

import (
	"testing"
	"time"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var jobDate = time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

func adminCaller(t *testing.T) identity.Caller {
	t.Helper()
	c, err := identity.NewCaller("admin-1", "Admin")
	require.NoError(t, err)
	return c
}

func customerCaller(t *testing.T, userID string) identity.Caller {
	t.Helper()
	c, err := identity.NewCaller(userID, "Customer")
	require.NoError(t, err)
	return c
}

func newCustomer(t *testing.T, userID string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), userID, "Nimal Perera", customer.Contact{})
	require.NoError(t, err)
	return c
}

func restoreJob(t *testing.T, customerID kernel.UUID, status job.Status) *job.Job {
	t.Helper()
	start, err := kernel.NewPlace("startLocation", "Kandy")
	require.NoError(t, err)
	dest, err := kernel.NewPlace("destination", "Colombo")
	require.NoError(t, err)
	j, err := job.RestoreJob(kernel.NewUUID(), customerID, start, dest, jobDate, status, 3)
	require.NoError(t, err)
	return j
}

func restoreLoad(t *testing.T, jobID kernel.UUID, unitID *kernel.UUID, status load.Status) *load.Load {
	t.Helper()
	w, err := kernel.NewWeight("weightKg", decimal.NewFromInt(80), load.MaxWeightKg)
	require.NoError(t, err)
	l, err := load.RestoreLoad(kernel.NewUUID(), jobID, load.NewNumber(), unitID, "Kitchen", w, jobDate, nil, status, 2)
	require.NoError(t, err)
	return l
}

func restoreProduct(t *testing.T, customerID kernel.UUID, isValid bool) *product.Product {
	t.Helper()
	w, err := kernel.NewWeight("weightKg", decimal.NewFromInt(12), product.MaxWeightKg)
	require.NoError(t, err)
	p, err := product.RestoreProduct(kernel.NewUUID(), customerID, product.Details{Name: "Fridge"}, w, isValid, 1)
	require.NoError(t, err)
	return p
}
