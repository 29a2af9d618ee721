// Package postgres provides the GORM implementation of the Unit of Work pattern for eshift.
// The unit of work owns the transaction, hands out repositories bound to it and, once the
// transaction commits, publishes the domain events recorded by the aggregates it tracked.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.JobRepository().Add(ctx, j); err != nil {
//	    return err
//	}
//	for _, l := range loads {
//	    if err := uow.LoadRepository().Add(ctx, l); err != nil {
//	        return err
//	    }
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is single-goroutine; concurrent requests use separate instances.
package postgres

import (
	"context"
	"log/slog"

	"eshift/internal/adapters/out/postgres/customerrepo"
	"eshift/internal/adapters/out/postgres/fleetrepo"
	"eshift/internal/adapters/out/postgres/jobrepo"
	"eshift/internal/adapters/out/postgres/loadproductrepo"
	"eshift/internal/adapters/out/postgres/loadrepo"
	"eshift/internal/adapters/out/postgres/productrepo"
	"eshift/internal/adapters/out/postgres/removalstore"
	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database handle and
// one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory. A nil publisher disables event publishing.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates modified in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the events of tracked aggregates.
// Publishing failures are logged and do not fail the commit.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTrackedEvents(ctx)
	return nil
}

// Rollback discards all changes made within the current transaction together with
// any events recorded by tracked aggregates.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	for _, tracked := range uow.trackedAggregates {
		if source, ok := tracked.Aggregate.(events.Source); ok {
			source.ClearDomainEvents()
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction or, outside one, the main connection.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LoadProductRepository() ports.LoadProductRepository {
	return loadproductrepo.NewGormLoadProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) FleetRepository() ports.FleetRepository {
	return fleetrepo.NewGormFleetRepository(uow.conn())
}

func (uow *GormUnitOfWork) RemovalStore() ports.RemovalStore {
	return removalstore.NewGormRemovalStore(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repositories call it after a successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	var pending []events.Event
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(events.Source)
		if !ok {
			continue
		}
		pending = append(pending, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if len(pending) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, pending); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish domain events",
			"count", len(pending),
			"error", err,
		)
	}
}
