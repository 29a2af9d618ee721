// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization, transaction
// management and persistence.
package commands

import (
	"context"

	"eshift/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers ask for the narrowest unit of work that covers the repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	FleetRepoFactory interface {
		FleetRepository() ports.FleetRepository
	}

	// CustomerUoW is used by customer provisioning.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// FleetUoW is used by operations that only touch transport units and their resources.
	FleetUoW interface {
		TxManager
		FleetRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// UoW spans every repository. Used by operations that coordinate several aggregates,
	// such as the job request transaction and entity removal.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobs := uow.JobRepository()
	//   loads := uow.LoadRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		FleetRepoFactory
		JobRepository() ports.JobRepository
		LoadRepository() ports.LoadRepository
		ProductRepository() ports.ProductRepository
		LoadProductRepository() ports.LoadProductRepository
		RemovalStore() ports.RemovalStore
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
