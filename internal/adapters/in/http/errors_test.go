package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failWith(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	s := NewServer(Handlers{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/customers/me", nil), rec)

	require.NoError(t, s.fail(c, err))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestServer_fail(t *testing.T) {
	t.Run("conflict body leaves out store details", func(t *testing.T) {
		cause := errors.New(`ERROR: insert or update on table "loads" violates foreign key constraint "fk_loads_job" (SQLSTATE 23503)`)

		code, body := failWith(t, errs.NewConflictErrorWithCause("load", "referenced row is missing or still in use", cause))

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "conflict: load, referenced row is missing or still in use", body.Message)
		assert.NotContains(t, body.Message, "fk_loads_job")
	})

	t.Run("wrapped conflict keeps its reason", func(t *testing.T) {
		err := errs.NewConflictError("job", "version 1 is stale")

		code, body := failWith(t, errors.Join(errors.New("update job"), err))

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "conflict: job, version 1 is stale", body.Message)
	})

	t.Run("unexpected errors get a generic message", func(t *testing.T) {
		code, body := failWith(t, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Internal server error", body.Message)
	})

	t.Run("validation errors are passed through", func(t *testing.T) {
		code, body := failWith(t, errs.NewValueIsRequiredError("jobDate"))

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "value is required: jobDate", body.Message)
	})
}
