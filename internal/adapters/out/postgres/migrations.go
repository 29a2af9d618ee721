package postgres

import (
	"context"

	"eshift/internal/adapters/out/postgres/customerrepo"
	"eshift/internal/adapters/out/postgres/fleetrepo"
	"eshift/internal/adapters/out/postgres/jobrepo"
	"eshift/internal/adapters/out/postgres/loadproductrepo"
	"eshift/internal/adapters/out/postgres/loadrepo"
	"eshift/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists every table's DTO, principals before dependents.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&fleetrepo.LorryDTO{},
		&fleetrepo.DriverDTO{},
		&fleetrepo.AssistantDTO{},
		&fleetrepo.ContainerDTO{},
		&fleetrepo.TransportUnitDTO{},
		&jobrepo.JobDTO{},
		&productrepo.ProductDTO{},
		&loadrepo.LoadDTO{},
		&loadproductrepo.LoadProductDTO{},
	}
}

// Migrate creates or updates the schema, including foreign keys carrying the deletion policy.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
