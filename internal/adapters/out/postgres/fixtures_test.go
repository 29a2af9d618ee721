package postgres_test

import (
	"context"
	"testing"
	"time"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/core/domain/model/loadproduct"
	"eshift/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher records what the unit of work publishes.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, published []events.Event) error {
	args := m.Called(ctx, published)
	return args.Error(0)
}

var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "user-"+kernel.NewUUID().String(), "Nimal Perera", customer.Contact{})
	require.NoError(t, err)
	return c
}

func newTestJob(t *testing.T, customerID kernel.UUID) *job.Job {
	t.Helper()
	start, err := kernel.NewPlace("startLocation", "Kandy")
	require.NoError(t, err)
	dest, err := kernel.NewPlace("destination", "Colombo")
	require.NoError(t, err)
	j, err := job.NewJob(kernel.NewUUID(), customerID, start, dest, testDate)
	require.NoError(t, err)
	return j
}

func newTestLoad(t *testing.T, jobID kernel.UUID) *load.Load {
	t.Helper()
	w, err := kernel.NewWeight("weightKg", decimal.RequireFromString("120.5"), load.MaxWeightKg)
	require.NoError(t, err)
	l, err := load.NewLoad(kernel.NewUUID(), jobID, load.NewNumber(), "Living room", w, testDate)
	require.NoError(t, err)
	return l
}

func newTestProduct(t *testing.T, customerID kernel.UUID) *product.Product {
	t.Helper()
	w, err := kernel.NewWeight("weightKg", decimal.NewFromInt(30), product.MaxWeightKg)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), customerID, product.Details{Name: "Armchair", Category: "Furniture"}, w)
	require.NoError(t, err)
	return p
}

func newTestLink(t *testing.T, loadID, productID kernel.UUID) *loadproduct.LoadProduct {
	t.Helper()
	lp, err := loadproduct.NewLoadProduct(kernel.NewUUID(), loadID, productID, 2)
	require.NoError(t, err)
	return lp
}

type testFleet struct {
	lorry     *fleet.Lorry
	driver    *fleet.Driver
	assistant *fleet.Assistant
	container *fleet.Container
	unit      *fleet.TransportUnit
}

func newTestFleet(t *testing.T) testFleet {
	t.Helper()
	var f testFleet
	var err error
	f.lorry, err = fleet.NewLorry(kernel.NewUUID(), "WP CAB-1234", "Isuzu Elf")
	require.NoError(t, err)
	f.driver, err = fleet.NewDriver(kernel.NewUUID(), "Sunil", "B1234567", "")
	require.NoError(t, err)
	f.assistant, err = fleet.NewAssistant(kernel.NewUUID(), "Kamal", "")
	require.NoError(t, err)
	f.container, err = fleet.NewContainer(kernel.NewUUID(), "C-77")
	require.NoError(t, err)
	assistantID := f.assistant.ID()
	f.unit, err = fleet.NewTransportUnit(kernel.NewUUID(), "TU-01", f.lorry.ID(), f.driver.ID(), &assistantID, f.container.ID())
	require.NoError(t, err)
	return f
}
