package pgerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("foreign key violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_loads_transport_unit"}

		err := pgerrors.Translate(fmt.Errorf("delete: %w", pgErr), "transport_unit")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "fk_loads_transport_unit")

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.NotContains(t, conflict.Message(), "fk_loads_transport_unit")
		assert.NotContains(t, conflict.Message(), "SQLSTATE")
	})

	t.Run("unique violation", func(t *testing.T) {
		err := pgerrors.Translate(&pgconn.PgError{Code: "23505"}, "customer")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("gorm translated errors", func(t *testing.T) {
		require.ErrorIs(t, pgerrors.Translate(gorm.ErrDuplicatedKey, "customer"), errs.ErrConflict)
		require.ErrorIs(t, pgerrors.Translate(gorm.ErrForeignKeyViolated, "job"), errs.ErrConflict)
	})

	t.Run("sqlite messages", func(t *testing.T) {
		err := pgerrors.Translate(errors.New("FOREIGN KEY constraint failed"), "product")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		other := &pgconn.PgError{Code: "57014"}
		assert.Same(t, other, pgerrors.Translate(other, "job"))
		assert.NoError(t, pgerrors.Translate(nil, "job"))
	})
}
