package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: public health and documentation routes plus the
// authenticated /api/v1 group.
func NewRouter(s *Server, auth *Authenticator, doc *APIDocument) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = s.handleEchoError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(context.Background(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", doc.Serve)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", auth.Middleware())

	// Customer
	api.POST("/customers/me", s.RegisterCustomer)
	api.POST("/jobs", s.RequestJob)
	api.GET("/jobs/mine", s.ListMyJobs)
	api.GET("/jobs/mine/:id", s.GetMyJob)
	api.PUT("/jobs/:id", s.UpdateJobDetails)
	api.POST("/jobs/:id/cancel", s.CancelJob)
	api.GET("/products/mine", s.ListMyProducts)

	// Administrator
	api.GET("/jobs", s.ListJobs)
	api.PUT("/jobs/:id/status", s.ChangeJobStatus)
	api.PUT("/loads/:id/transport-unit", s.AssignTransportUnit)
	api.PUT("/loads/:id/status", s.AdvanceLoadStatus)
	api.POST("/products/:id/toggle-validation", s.ToggleProductValidation)
	api.POST("/lorries", s.RegisterLorry)
	api.POST("/drivers", s.RegisterDriver)
	api.POST("/assistants", s.RegisterAssistant)
	api.POST("/containers", s.RegisterContainer)
	api.POST("/transport-units", s.CreateTransportUnit)
	api.GET("/transport-units", s.ListTransportUnits)
	api.GET("/dashboard", s.GetDashboard)
	api.DELETE("/entities/:kind/:id", s.DeleteEntity)

	return e
}
