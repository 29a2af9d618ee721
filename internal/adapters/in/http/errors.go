package http

import (
	"errors"
	"log/slog"
	"net/http"

	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps the error taxonomy to HTTP status codes.
func statusOf(err error) int {
	if errors.Is(err, commands.ErrJobRequestFailed) {
		return http.StatusServiceUnavailable
	}
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindUnauthorized:
		return http.StatusForbidden
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindUnexpected:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// fail writes err as an ErrorResponse. Unexpected failures are logged here, once, and
// answered with a generic message. Conflicts are answered without their cause.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)

	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = commands.ErrJobRequestFailed.Error()
		s.logFailure(c, slog.LevelWarn, err)
	case http.StatusInternalServerError:
		message = "Internal server error"
		s.logFailure(c, slog.LevelError, err)
	case http.StatusConflict:
		var conflict *errs.ConflictError
		if errors.As(err, &conflict) {
			message = conflict.Message()
			if conflict.Cause != nil {
				s.logFailure(c, slog.LevelInfo, err)
			}
		}
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func (s *Server) logFailure(c echo.Context, level slog.Level, err error) {
	req := c.Request()
	s.logger.Log(req.Context(), level, "request failed",
		"method", req.Method,
		"path", c.Path(),
		"user_id", CallerFrom(c).UserID(),
		"error", err,
	)
}

// badRequest reports a malformed body or parameter.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

// handleEchoError renders echo's own errors (unknown route, method not allowed) in the
// ErrorResponse shape.
func (s *Server) handleEchoError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		_ = c.JSON(he.Code, ErrorResponse{Code: he.Code, Message: msg})
		return
	}

	_ = s.fail(c, err)
}
