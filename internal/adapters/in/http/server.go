package http

import (
	"log/slog"

	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/core/application/usecases/queries"
)

// Handlers groups the use case handlers the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	RegisterCustomer        commands.RegisterCustomerCommandHandler
	RequestJob              commands.RequestJobCommandHandler
	UpdateJobDetails        commands.UpdateJobDetailsCommandHandler
	CancelJob               commands.CancelJobCommandHandler
	ChangeJobStatus         commands.ChangeJobStatusCommandHandler
	AssignTransportUnit     commands.AssignTransportUnitCommandHandler
	AdvanceLoadStatus       commands.AdvanceLoadStatusCommandHandler
	ToggleProductValidation commands.ToggleProductValidationCommandHandler
	RegisterFleetResource   commands.RegisterFleetResourceCommandHandler
	CreateTransportUnit     commands.CreateTransportUnitCommandHandler
	DeleteEntity            commands.DeleteEntityCommandHandler

	// Query handlers
	ListMyJobs         queries.ListMyJobsQueryHandler
	GetMyJob           queries.GetMyJobQueryHandler
	ListMyProducts     queries.ListMyProductsQueryHandler
	ListJobs           queries.ListJobsQueryHandler
	GetDashboard       queries.GetDashboardQueryHandler
	ListTransportUnits queries.ListTransportUnitsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}
