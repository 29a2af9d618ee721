package loadrepo

import (
	"context"
	"errors"

	"eshift/internal/adapters/out/postgres/optimistic"
	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Job", "TransportUnit").Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "load")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the transport unit reference and the status in the same statement, so no
// reader sees one without the other.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := optimistic.Update(ctx, r.db, &LoadDTO{}, "load", dto.ID, dto.Version, map[string]any{
		"transport_unit_id": dto.TransportUnitID,
		"description":       dto.Description,
		"weight_kg":         dto.WeightKg,
		"pickup_date":       dto.PickupDate,
		"delivery_date":     dto.DeliveryDate,
		"status":            dto.Status,
	}); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByJobForUpdate reads the loads of a job with SELECT ... FOR UPDATE. SQLite has no row
// locks and serialises writers on the database instead.
func (r *GormLoadRepository) GetByJobForUpdate(ctx context.Context, jobID kernel.UUID) ([]*load.Load, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).Order("pickup_date, load_number").Find(&dtos, "job_id = ?", jobID.Bytes()).Error; err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}
