package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"eshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictErrorKind(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("job", "row was modified by another writer")

		assert.Equal(t, "job", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: job, row was modified by another writer", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewConflictErrorWithCause("customer", "already registered", cause)

		assert.Equal(t, "conflict: customer, already registered (cause: duplicate key)", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("customer")
	assert.Equal(t, "unauthorized: customer", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	withCause := errs.NewUnauthorizedErrorWithCause("customer", errors.New("id mismatch"))
	assert.Equal(t, "unauthorized: customer (cause: id mismatch)", withCause.Error())
}

func TestPreconditionFailedError(t *testing.T) {
	err := errs.NewPreconditionFailedErrorWithCause("status", errors.New("Completed is terminal"))
	assert.Equal(t, "precondition failed: status (cause: Completed is terminal)", err.Error())
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, errs.KindUnexpected},
		{"plain error", errors.New("boom"), errs.KindUnexpected},
		{"required", errs.NewValueIsRequiredError("name"), errs.KindValidation},
		{"invalid", errs.NewValueIsInvalidError("status"), errs.KindValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("weight", 0, 0.01, 1000), errs.KindValidation},
		{"precondition", errs.NewPreconditionFailedError("status"), errs.KindPreconditionFailed},
		{"not found", errs.NewObjectNotFoundError("job", "1"), errs.KindNotFound},
		{"unauthorized", errs.NewUnauthorizedError("job"), errs.KindUnauthorized},
		{"conflict", errs.NewConflictError("job", "stale"), errs.KindConflict},
		{"wrapped conflict", fmt.Errorf("update job: %w", errs.NewConflictError("job", "stale")), errs.KindConflict},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsRequiredError("b")), errs.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewPreconditionFailedError("status")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("status")))
	assert.False(t, errs.IsValidation(errs.NewConflictError("job", "stale")))
	assert.False(t, errs.IsValidation(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "conflict", errs.KindConflict.String())
	assert.Equal(t, "not_found", errs.KindNotFound.String())
	assert.Equal(t, "unexpected", errs.Kind(42).String())
}
