// Package optimistic implements version-checked updates shared by the repositories.
package optimistic

import (
	"context"
	"fmt"

	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Update writes values to the row of model with the given id only if its version column
// still equals version, and increments the version.
//
// Zero affected rows is an ObjectNotFoundError when the row is gone and a ConflictError
// when another writer got there first.
func Update(
	ctx context.Context,
	db *gorm.DB,
	model any,
	paramName string,
	id uuid.UUID,
	version int,
	values map[string]any,
) error {
	set := make(map[string]any, len(values)+1)
	for k, v := range values {
		set[k] = v
	}
	set["version"] = gorm.Expr("version + 1")

	result := db.WithContext(ctx).Model(model).Where("id = ? AND version = ?", id, version).Updates(set)
	if result.Error != nil {
		return pgerrors.Translate(result.Error, paramName)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(paramName, id.String())
	}

	return errs.NewConflictError(paramName, fmt.Sprintf("modified concurrently, version %d is stale", version))
}
