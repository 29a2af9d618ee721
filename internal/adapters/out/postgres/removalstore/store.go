// Package removalstore reads the entity graph for services.RemovalPlanner and executes
// removal plans with plain SQL over the tables the repositories own.
package removalstore

import (
	"context"
	"fmt"

	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var tables = map[services.Kind]string{
	services.KindCustomer:      "customers",
	services.KindJob:           "jobs",
	services.KindLoad:          "loads",
	services.KindProduct:       "products",
	services.KindLoadProduct:   "load_products",
	services.KindTransportUnit: "transport_units",
	services.KindLorry:         "lorries",
	services.KindDriver:        "drivers",
	services.KindAssistant:     "assistants",
	services.KindContainer:     "containers",
}

// GormRemovalStore implements ports.RemovalStore.
type GormRemovalStore struct {
	db *gorm.DB
}

func NewGormRemovalStore(db *gorm.DB) *GormRemovalStore {
	return &GormRemovalStore{db: db}
}

func (s *GormRemovalStore) Exists(ctx context.Context, kind services.Kind, id kernel.UUID) (bool, error) {
	table, err := tableOf(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Table(table).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormRemovalStore) DependentIDs(
	ctx context.Context,
	rule services.Rule,
	principalIDs []kernel.UUID,
) ([]kernel.UUID, error) {
	table, err := tableOf(rule.Dependent)
	if err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	err = s.db.WithContext(ctx).
		Table(table).
		Where(pq.QuoteIdentifier(rule.ForeignKey)+" IN ?", bytesOf(principalIDs)).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Execute nulls references first and then deletes plan.Deletes in order. Run it inside a
// transaction: a failure midway leaves earlier statements applied.
func (s *GormRemovalStore) Execute(ctx context.Context, plan services.RemovalPlan) error {
	db := s.db.WithContext(ctx)

	for _, n := range plan.Nullifications {
		table, err := tableOf(n.Rule.Dependent)
		if err != nil {
			return err
		}
		column := pq.QuoteIdentifier(n.Rule.ForeignKey)
		if err := db.Exec(
			fmt.Sprintf("UPDATE %s SET %s = NULL WHERE id IN ?", pq.QuoteIdentifier(table), column),
			bytesOf(n.DependentIDs),
		).Error; err != nil {
			return pgerrors.Translate(err, string(n.Rule.Dependent))
		}
	}

	for _, step := range plan.Deletes {
		table, err := tableOf(step.Kind)
		if err != nil {
			return err
		}
		if err := db.Exec(
			fmt.Sprintf("DELETE FROM %s WHERE id IN ?", pq.QuoteIdentifier(table)),
			bytesOf(step.IDs),
		).Error; err != nil {
			return pgerrors.Translate(err, string(step.Kind))
		}
	}

	return nil
}

func tableOf(kind services.Kind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("no table for entity kind %q", kind)
	}
	return table, nil
}

func bytesOf(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}
