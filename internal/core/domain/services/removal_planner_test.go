package services_test

import (
	"context"
	"errors"
	"testing"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/services"
	"eshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	kind services.Kind
	id   kernel.UUID
	fks  map[string]kernel.UUID
}

// memoryGraph is a Graph over a flat list of rows.
type memoryGraph struct {
	rows []row
	err  error
}

func (g *memoryGraph) add(kind services.Kind, fks map[string]kernel.UUID) kernel.UUID {
	id := kernel.NewUUID()
	g.rows = append(g.rows, row{kind: kind, id: id, fks: fks})
	return id
}

func (g *memoryGraph) Exists(_ context.Context, kind services.Kind, id kernel.UUID) (bool, error) {
	for _, r := range g.rows {
		if r.kind == kind && r.id.IsEqual(id) {
			return true, nil
		}
	}
	return false, nil
}

func (g *memoryGraph) DependentIDs(_ context.Context, rule services.Rule, principalIDs []kernel.UUID) ([]kernel.UUID, error) {
	if g.err != nil {
		return nil, g.err
	}
	var out []kernel.UUID
	for _, r := range g.rows {
		if r.kind != rule.Dependent {
			continue
		}
		fk, ok := r.fks[rule.ForeignKey]
		if !ok {
			continue
		}
		for _, p := range principalIDs {
			if fk.IsEqual(p) {
				out = append(out, r.id)
				break
			}
		}
	}
	return out, nil
}

func kinds(plan services.RemovalPlan) []services.Kind {
	out := make([]services.Kind, 0, len(plan.Deletes))
	for _, s := range plan.Deletes {
		out = append(out, s.Kind)
	}
	return out
}

func TestRemovalPlanner_Plan(t *testing.T) {
	ctx := context.Background()
	planner := services.NewRemovalPlanner()

	t.Run("should cascade customer jobs loads and links leaves first", func(t *testing.T) {
		g := &memoryGraph{}
		customerID := g.add(services.KindCustomer, nil)
		otherCustomer := g.add(services.KindCustomer, nil)
		productID := g.add(services.KindProduct, map[string]kernel.UUID{"customer_id": otherCustomer})
		jobID := g.add(services.KindJob, map[string]kernel.UUID{"customer_id": customerID})
		loadA := g.add(services.KindLoad, map[string]kernel.UUID{"job_id": jobID})
		loadB := g.add(services.KindLoad, map[string]kernel.UUID{"job_id": jobID})
		g.add(services.KindLoadProduct, map[string]kernel.UUID{"load_id": loadA, "product_id": productID})
		g.add(services.KindLoadProduct, map[string]kernel.UUID{"load_id": loadB, "product_id": productID})

		plan, err := planner.Plan(ctx, g, services.KindCustomer, customerID)

		require.NoError(t, err)
		assert.Equal(t, []services.Kind{
			services.KindLoadProduct, services.KindLoad, services.KindJob, services.KindCustomer,
		}, kinds(plan))
		assert.Equal(t, 6, plan.Rows())
		assert.Empty(t, plan.Nullifications)
		assert.True(t, plan.Deletes[len(plan.Deletes)-1].IDs[0].IsEqual(customerID))
	})

	t.Run("should block customer with products and plan nothing", func(t *testing.T) {
		g := &memoryGraph{}
		customerID := g.add(services.KindCustomer, nil)
		g.add(services.KindProduct, map[string]kernel.UUID{"customer_id": customerID})
		g.add(services.KindProduct, map[string]kernel.UUID{"customer_id": customerID})
		g.add(services.KindJob, map[string]kernel.UUID{"customer_id": customerID})

		plan, err := planner.Plan(ctx, g, services.KindCustomer, customerID)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "2 product")
		assert.Empty(t, plan.Deletes)
	})

	t.Run("should block through a cascaded row", func(t *testing.T) {
		g := &memoryGraph{}
		lorryID := g.add(services.KindLorry, nil)
		g.add(services.KindTransportUnit, map[string]kernel.UUID{"lorry_id": lorryID})

		_, err := planner.Plan(ctx, g, services.KindLorry, lorryID)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "lorry", conflict.ParamName)
		assert.Contains(t, conflict.Reason, "1 transport_unit")
	})

	t.Run("should block product referenced by a link", func(t *testing.T) {
		g := &memoryGraph{}
		productID := g.add(services.KindProduct, nil)
		g.add(services.KindLoadProduct, map[string]kernel.UUID{"product_id": productID, "load_id": kernel.NewUUID()})

		_, err := planner.Plan(ctx, g, services.KindProduct, productID)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should block transport unit referenced by loads", func(t *testing.T) {
		g := &memoryGraph{}
		unitID := g.add(services.KindTransportUnit, nil)
		g.add(services.KindLoad, map[string]kernel.UUID{"transport_unit_id": unitID, "job_id": kernel.NewUUID()})

		_, err := planner.Plan(ctx, g, services.KindTransportUnit, unitID)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "1 load")
	})

	t.Run("should null assistant references and keep units", func(t *testing.T) {
		g := &memoryGraph{}
		assistantID := g.add(services.KindAssistant, nil)
		unitID := g.add(services.KindTransportUnit, map[string]kernel.UUID{"assistant_id": assistantID})

		plan, err := planner.Plan(ctx, g, services.KindAssistant, assistantID)

		require.NoError(t, err)
		require.Len(t, plan.Nullifications, 1)
		assert.Equal(t, "assistant_id", plan.Nullifications[0].Rule.ForeignKey)
		assert.True(t, plan.Nullifications[0].DependentIDs[0].IsEqual(unitID))
		assert.Equal(t, []services.Kind{services.KindAssistant}, kinds(plan))
	})

	t.Run("should report missing row as not found", func(t *testing.T) {
		_, err := planner.Plan(ctx, &memoryGraph{}, services.KindJob, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should pass through graph failures", func(t *testing.T) {
		boom := errors.New("connection reset")
		g := &memoryGraph{}
		jobID := g.add(services.KindJob, nil)
		g.err = boom

		_, err := planner.Plan(ctx, g, services.KindJob, jobID)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, errs.KindUnexpected, errs.KindOf(err))
	})
}

func TestDeletionPolicy(t *testing.T) {
	t.Run("container is restricted", func(t *testing.T) {
		r, ok := services.RuleFor(services.KindTransportUnit, "container_id")
		require.True(t, ok)
		assert.Equal(t, services.Restrict, r.Action)
	})

	t.Run("assistant is set null", func(t *testing.T) {
		r, ok := services.RuleFor(services.KindTransportUnit, "assistant_id")
		require.True(t, ok)
		assert.Equal(t, services.SetNull, r.Action)
		assert.Equal(t, "SET NULL", r.Action.String())
	})

	t.Run("parse kind", func(t *testing.T) {
		k, err := services.ParseKind("TransportUnit")
		require.NoError(t, err)
		assert.Equal(t, services.KindTransportUnit, k)

		k, err = services.ParseKind("load-product")
		require.NoError(t, err)
		assert.Equal(t, services.KindLoadProduct, k)

		_, err = services.ParseKind("warehouse")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
