// Package ports defines the contracts between the eshift core and its infrastructure:
// repositories per aggregate, the unit of work, the removal store and the event publisher.
package ports

import (
	"context"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/core/domain/model/loadproduct"
	"eshift/internal/core/domain/model/product"
)

// CustomerRepository persists customers. Lookups of missing rows return an ObjectNotFoundError.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByUserID resolves the customer provisioned for an identity subject.
	GetByUserID(ctx context.Context, userID string) (*customer.Customer, error)
}

// JobRepository persists jobs.
//
// Update applies optimistic concurrency: it writes only if the stored version still equals
// aggregate.Version() and returns a ConflictError otherwise.
type JobRepository interface {
	Add(ctx context.Context, aggregate *job.Job) error
	Update(ctx context.Context, aggregate *job.Job) error
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate reads the job and holds its row lock until the transaction ends.
	// Writers that must agree with the job's status take this lock first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)
}

// LoadRepository persists loads. Update changes transport unit and status in one statement
// under the same version check as JobRepository.Update.
type LoadRepository interface {
	Add(ctx context.Context, aggregate *load.Load) error
	Update(ctx context.Context, aggregate *load.Load) error
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetByJobForUpdate returns the loads of a job ordered by pickup date and locks
	// their rows until the transaction ends.
	GetByJobForUpdate(ctx context.Context, jobID kernel.UUID) ([]*load.Load, error)
}

// ProductRepository persists products with the same version check as JobRepository.Update.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

type LoadProductRepository interface {
	Add(ctx context.Context, link *loadproduct.LoadProduct) error
}

// FleetRepository persists transport units and the resources they bundle.
type FleetRepository interface {
	AddLorry(ctx context.Context, lorry *fleet.Lorry) error
	AddDriver(ctx context.Context, driver *fleet.Driver) error
	AddAssistant(ctx context.Context, assistant *fleet.Assistant) error
	AddContainer(ctx context.Context, container *fleet.Container) error
	AddTransportUnit(ctx context.Context, unit *fleet.TransportUnit) error

	GetTransportUnit(ctx context.Context, id kernel.UUID) (*fleet.TransportUnit, error)
	GetLorry(ctx context.Context, id kernel.UUID) (*fleet.Lorry, error)
	GetDriver(ctx context.Context, id kernel.UUID) (*fleet.Driver, error)
	GetAssistant(ctx context.Context, id kernel.UUID) (*fleet.Assistant, error)
	GetContainer(ctx context.Context, id kernel.UUID) (*fleet.Container, error)
}
