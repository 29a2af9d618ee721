package jobrepo

import (
	"context"
	"errors"

	"eshift/internal/adapters/out/postgres/optimistic"
	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Customer").Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "job")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes locations, date and status if the stored version matches.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := optimistic.Update(ctx, r.db, &JobDTO{}, "job", dto.ID, dto.Version, map[string]any{
		"start_location": dto.StartLocation,
		"destination":    dto.Destination,
		"job_date":       dto.JobDate,
		"status":         dto.Status,
	}); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate reads the job with SELECT ... FOR UPDATE.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormJobRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
