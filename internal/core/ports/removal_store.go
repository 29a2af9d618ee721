package ports

import (
	"context"

	"eshift/internal/core/domain/services"
)

// RemovalStore reads the entity graph for the removal planner and executes its plans.
type RemovalStore interface {
	services.Graph

	// Execute applies the plan inside the caller's transaction. A foreign key violation
	// raised by the store is returned as a ConflictError.
	Execute(ctx context.Context, plan services.RemovalPlan) error
}
