package load_test

import (
	"strings"
	"testing"
	"time"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pickup = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newWeight(t *testing.T, kg string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight("weightKg", decimal.RequireFromString(kg), load.MaxWeightKg)
	require.NoError(t, err)
	return w
}

func newLoad(t *testing.T) *load.Load {
	t.Helper()
	l, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), load.NewNumber(), "Bedroom furniture", newWeight(t, "350"), pickup)
	require.NoError(t, err)
	return l
}

func restoreLoad(t *testing.T, status load.Status, unitID *kernel.UUID) *load.Load {
	t.Helper()
	number, err := load.NumberFromString("AB12CD34")
	require.NoError(t, err)
	l, err := load.RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), number, unitID, "Boxes", newWeight(t, "80"), pickup, nil, status, 3)
	require.NoError(t, err)
	return l
}

func TestNewLoad(t *testing.T) {
	t.Run("starts pending without a unit", func(t *testing.T) {
		l := newLoad(t)

		require.NoError(t, l.Validate())
		assert.Equal(t, load.Pending, l.Status())
		assert.Nil(t, l.TransportUnitID())
		assert.Nil(t, l.DeliveryDate())
		assert.Equal(t, 1, l.Version())
		assert.Empty(t, l.DomainEvents())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := load.NewLoad(kernel.UUID{}, kernel.UUID{}, load.Number{}, "", kernel.Weight{}, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, load.ErrNumberIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "pickupDate")
	})

	t.Run("rejects long description", func(t *testing.T) {
		_, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), load.NewNumber(),
			strings.Repeat("d", load.DescriptionMaxLength+1), newWeight(t, "1"), pickup)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreLoad_RejectsBadVersionAndStatus(t *testing.T) {
	number := load.NewNumber()
	_, err := load.RestoreLoad(kernel.NewUUID(), kernel.NewUUID(), number, nil, "Boxes", newWeight(t, "1"), pickup, nil, load.Unknown, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestNewNumber(t *testing.T) {
	n := load.NewNumber()

	require.NoError(t, n.Validate())
	assert.Len(t, n.String(), 8)
	assert.Equal(t, strings.ToUpper(n.String()), n.String())
	assert.NotEqual(t, n.String(), load.NewNumber().String())
}

func TestLoad_AssignTransportUnit(t *testing.T) {
	t.Run("assigning a unit to a pending load makes it assigned", func(t *testing.T) {
		l := newLoad(t)
		unitID := kernel.NewUUID()

		require.NoError(t, l.AssignTransportUnit(&unitID))

		assert.Equal(t, load.Assigned, l.Status())
		require.NotNil(t, l.TransportUnitID())
		assert.True(t, unitID.IsEqual(*l.TransportUnitID()))
		require.Len(t, l.DomainEvents(), 1)
		assert.Equal(t, events.LoadTransportUnitAssigned, l.DomainEvents()[0].Type())
	})

	t.Run("clearing the unit makes the load pending", func(t *testing.T) {
		unitID := kernel.NewUUID()
		l := restoreLoad(t, load.Assigned, &unitID)

		require.NoError(t, l.AssignTransportUnit(nil))

		assert.Equal(t, load.Pending, l.Status())
		assert.Nil(t, l.TransportUnitID())
		require.Len(t, l.DomainEvents(), 1)
		assert.Equal(t, events.LoadTransportUnitUnassigned, l.DomainEvents()[0].Type())
	})

	t.Run("reassigning to another unit keeps assigned", func(t *testing.T) {
		first, second := kernel.NewUUID(), kernel.NewUUID()
		l := restoreLoad(t, load.Assigned, &first)

		require.NoError(t, l.AssignTransportUnit(&second))

		assert.Equal(t, load.Assigned, l.Status())
		assert.True(t, second.IsEqual(*l.TransportUnitID()))
	})

	t.Run("the caller's pointer is not retained", func(t *testing.T) {
		l := newLoad(t)
		unitID := kernel.NewUUID()
		require.NoError(t, l.AssignTransportUnit(&unitID))

		unitID = kernel.NewUUID()

		assert.False(t, unitID.IsEqual(*l.TransportUnitID()))
	})

	t.Run("delivered load keeps status when unassigned", func(t *testing.T) {
		unitID := kernel.NewUUID()
		l := restoreLoad(t, load.Delivered, &unitID)

		require.NoError(t, l.AssignTransportUnit(nil))

		assert.Equal(t, load.Delivered, l.Status())
		assert.Nil(t, l.TransportUnitID())
	})

	t.Run("cancelled load keeps status when assigned", func(t *testing.T) {
		l := restoreLoad(t, load.Cancelled, nil)
		unitID := kernel.NewUUID()

		require.NoError(t, l.AssignTransportUnit(&unitID))

		assert.Equal(t, load.Cancelled, l.Status())
		assert.True(t, unitID.IsEqual(*l.TransportUnitID()))
	})

	t.Run("unassigning an unassigned pending load twice is a no-op", func(t *testing.T) {
		l := newLoad(t)

		require.NoError(t, l.AssignTransportUnit(nil))
		first := l.Status()
		require.NoError(t, l.AssignTransportUnit(nil))

		assert.Equal(t, load.Pending, first)
		assert.Equal(t, load.Pending, l.Status())
		assert.Nil(t, l.TransportUnitID())
		assert.Empty(t, l.DomainEvents())
	})

	t.Run("invalid unit id is rejected without changes", func(t *testing.T) {
		l := newLoad(t)
		var zero kernel.UUID

		require.ErrorIs(t, l.AssignTransportUnit(&zero), kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, load.Pending, l.Status())
		assert.Nil(t, l.TransportUnitID())
	})
}

func TestLoad_Progress(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		unitID := kernel.NewUUID()
		l := newLoad(t)
		require.NoError(t, l.AssignTransportUnit(&unitID))
		require.NoError(t, l.MarkPickedUp())
		deliveredAt := pickup.Add(48 * time.Hour)
		require.NoError(t, l.MarkDelivered(deliveredAt))

		assert.Equal(t, load.Delivered, l.Status())
		require.NotNil(t, l.DeliveryDate())
		assert.Equal(t, deliveredAt, *l.DeliveryDate())
		assert.Len(t, l.DomainEvents(), 3)
	})

	t.Run("cannot pick up a pending load", func(t *testing.T) {
		l := newLoad(t)
		require.ErrorIs(t, l.MarkPickedUp(), errs.ErrPreconditionFailed)
		assert.Equal(t, load.Pending, l.Status())
	})

	t.Run("delivery date before pickup is rejected", func(t *testing.T) {
		l := restoreLoad(t, load.PickedUp, nil)
		require.ErrorIs(t, l.MarkDelivered(pickup.Add(-time.Hour)), errs.ErrValueIsInvalid)
		assert.Equal(t, load.PickedUp, l.Status())
		assert.Nil(t, l.DeliveryDate())
	})

	t.Run("cancel keeps the unit reference", func(t *testing.T) {
		unitID := kernel.NewUUID()
		l := restoreLoad(t, load.Assigned, &unitID)

		require.NoError(t, l.Cancel())

		assert.Equal(t, load.Cancelled, l.Status())
		assert.NotNil(t, l.TransportUnitID())
		require.ErrorIs(t, l.Cancel(), errs.ErrPreconditionFailed)
	})
}

func TestLoad_ZeroValue(t *testing.T) {
	var l *load.Load
	require.ErrorIs(t, l.Validate(), load.ErrLoadIsNotConstructed)
	require.ErrorIs(t, (&load.Load{}).Validate(), load.ErrLoadIsNotConstructed)
}
