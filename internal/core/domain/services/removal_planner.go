package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
)

// Graph answers the questions the planner asks about stored rows.
type Graph interface {
	Exists(ctx context.Context, kind Kind, id kernel.UUID) (bool, error)
	// DependentIDs returns ids of rule.Dependent rows whose rule.ForeignKey is one of principalIDs.
	DependentIDs(ctx context.Context, rule Rule, principalIDs []kernel.UUID) ([]kernel.UUID, error)
}

// Step deletes the listed rows of one kind.
type Step struct {
	Kind Kind
	IDs  []kernel.UUID
}

// Nullification clears rule.ForeignKey on the listed dependent rows.
type Nullification struct {
	Rule         Rule
	DependentIDs []kernel.UUID
}

// RemovalPlan is an ordered set of writes that removes a row and everything the policy
// cascades from it. Nullifications run first, then Deletes in order; the last step is the
// requested row itself.
type RemovalPlan struct {
	Kind           Kind
	ID             kernel.UUID
	Nullifications []Nullification
	Deletes        []Step
}

// Rows counts the rows the plan deletes.
func (p RemovalPlan) Rows() int {
	n := 0
	for _, s := range p.Deletes {
		n += len(s.IDs)
	}
	return n
}

// RemovalPlanner walks DeletionPolicy from a principal row.
//
// Business rules:
//   - Every Restrict rule of the principal and of every cascaded row is checked
//   - Any blocking dependent fails the whole plan with a ConflictError naming the blocking
//     kinds and counts; nothing is planned for removal
//   - A dependent that the same plan deletes anyway does not block
//   - Deleting a missing row is NotFound
//
// Example usage:
//
//	planner := services.NewRemovalPlanner()
//	plan, err := planner.Plan(ctx, store, services.KindCustomer, customerID)
//	if errors.Is(err, errs.ErrConflict) {
//	    // the customer still owns products
//	}
type RemovalPlanner struct {
	policy []Rule
}

func NewRemovalPlanner() RemovalPlanner {
	return RemovalPlanner{policy: DeletionPolicy()}
}

type blocker struct {
	rule Rule
	ids  []kernel.UUID
}

// Plan builds the removal plan for (kind, id).
func (p RemovalPlanner) Plan(ctx context.Context, g Graph, kind Kind, id kernel.UUID) (RemovalPlan, error) {
	if err := id.Validate(); err != nil {
		return RemovalPlan{}, err
	}

	exists, err := g.Exists(ctx, kind, id)
	if err != nil {
		return RemovalPlan{}, err
	}
	if !exists {
		return RemovalPlan{}, errs.NewObjectNotFoundError(string(kind), id)
	}

	var (
		queue    = []Step{{Kind: kind, IDs: []kernel.UUID{id}}}
		visited  []Step
		deleted  = map[Kind]map[string]bool{kind: {id.String(): true}}
		blockers []blocker
		nulls    []Nullification
	)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited = append(visited, node)

		for _, rule := range p.policy {
			if rule.Principal != node.Kind {
				continue
			}

			deps, err := g.DependentIDs(ctx, rule, node.IDs)
			if err != nil {
				return RemovalPlan{}, fmt.Errorf("read %s dependents of %s: %w", rule.Dependent, rule.Principal, err)
			}
			if len(deps) == 0 {
				continue
			}

			switch rule.Action {
			case Restrict:
				blockers = append(blockers, blocker{rule: rule, ids: deps})
			case SetNull:
				nulls = append(nulls, Nullification{Rule: rule, DependentIDs: deps})
			case Cascade:
				fresh := markDeleted(deleted, rule.Dependent, deps)
				if len(fresh) > 0 {
					queue = append(queue, Step{Kind: rule.Dependent, IDs: fresh})
				}
			}
		}
	}

	if err := conflictFor(kind, blockers, deleted); err != nil {
		return RemovalPlan{}, err
	}

	plan := RemovalPlan{Kind: kind, ID: id}
	for i := len(visited) - 1; i >= 0; i-- {
		plan.Deletes = append(plan.Deletes, visited[i])
	}
	for _, n := range nulls {
		if remaining := without(n.DependentIDs, deleted[n.Rule.Dependent]); len(remaining) > 0 {
			plan.Nullifications = append(plan.Nullifications, Nullification{Rule: n.Rule, DependentIDs: remaining})
		}
	}

	return plan, nil
}

func markDeleted(deleted map[Kind]map[string]bool, kind Kind, ids []kernel.UUID) []kernel.UUID {
	if deleted[kind] == nil {
		deleted[kind] = map[string]bool{}
	}
	var fresh []kernel.UUID
	for _, id := range ids {
		key := id.String()
		if deleted[kind][key] {
			continue
		}
		deleted[kind][key] = true
		fresh = append(fresh, id)
	}
	return fresh
}

func without(ids []kernel.UUID, drop map[string]bool) []kernel.UUID {
	var out []kernel.UUID
	for _, id := range ids {
		if !drop[id.String()] {
			out = append(out, id)
		}
	}
	return out
}

func conflictFor(kind Kind, blockers []blocker, deleted map[Kind]map[string]bool) error {
	blocking := map[Kind]map[string]bool{}
	for _, b := range blockers {
		for _, id := range without(b.ids, deleted[b.rule.Dependent]) {
			if blocking[b.rule.Dependent] == nil {
				blocking[b.rule.Dependent] = map[string]bool{}
			}
			blocking[b.rule.Dependent][id.String()] = true
		}
	}

	var parts []string
	for k, ids := range blocking {
		parts = append(parts, fmt.Sprintf("%d %s", len(ids), k))
	}
	if len(parts) == 0 {
		return nil
	}
	sort.Strings(parts)

	return errs.NewConflictError(string(kind), "still referenced by "+strings.Join(parts, ", "))
}
