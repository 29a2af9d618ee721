package http

import (
	"errors"
	"net/http"

	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/core/application/usecases/queries"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"

	"github.com/labstack/echo/v4"
)

// ListJobs handles GET /api/v1/jobs?status=&page=&pageSize=.
func (s *Server) ListJobs(c echo.Context) error {
	var status *job.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := job.ParseStatus(raw)
		if err != nil {
			return s.fail(c, err)
		}
		status = &parsed
	}
	page, pageErr := intQuery(c, "page")
	pageSize, sizeErr := intQuery(c, "pageSize")
	if err := errors.Join(pageErr, sizeErr); err != nil {
		return s.fail(c, err)
	}
	if page == 0 {
		page = 1
	}

	query, err := queries.NewListJobsQuery(CallerFrom(c), status, page, pageSize)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.ListJobs.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, JobPageResponse{
		Items:    toJobSummaryResponses(result.Items),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		Pages:    result.Pages(),
	})
}

// ChangeJobStatus handles PUT /api/v1/jobs/{id}/status.
func (s *Server) ChangeJobStatus(c echo.Context) error {
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var body JobStatusRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	target, err := job.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeJobStatusCommand(CallerFrom(c), jobID, target, body.Version)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.ChangeJobStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignTransportUnit handles PUT /api/v1/loads/{id}/transport-unit. A null
// transportUnitId clears the assignment.
func (s *Server) AssignTransportUnit(c echo.Context) error {
	loadID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var body AssignTransportUnitRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	unitID, err := optionalUUID("transportUnitId", body.TransportUnitID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignTransportUnitCommand(CallerFrom(c), loadID, unitID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.AssignTransportUnit.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdvanceLoadStatus handles PUT /api/v1/loads/{id}/status.
func (s *Server) AdvanceLoadStatus(c echo.Context) error {
	loadID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var body StatusRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	target, statusErr := load.ParseStatus(body.Status)
	at, dateErr := parseDate("deliveryDate", body.DeliveryDate)
	if err = errors.Join(statusErr, dateErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAdvanceLoadStatusCommand(CallerFrom(c), loadID, target, at)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.AdvanceLoadStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleProductValidation handles POST /api/v1/products/{id}/toggle-validation.
func (s *Server) ToggleProductValidation(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewToggleProductValidationCommand(CallerFrom(c), productID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.ToggleProductValidation.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RegisterLorry(c echo.Context) error {
	var body RegisterLorryRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterLorryCommand(CallerFrom(c), id, body.NumberPlate, body.Model)
	if err != nil {
		return s.fail(c, err)
	}
	return s.created(c, id, s.h.RegisterFleetResource.HandleLorry(c.Request().Context(), cmd))
}

func (s *Server) RegisterDriver(c echo.Context) error {
	var body RegisterDriverRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(CallerFrom(c), id, body.Name, body.LicenseNumber, body.Phone)
	if err != nil {
		return s.fail(c, err)
	}
	return s.created(c, id, s.h.RegisterFleetResource.HandleDriver(c.Request().Context(), cmd))
}

func (s *Server) RegisterAssistant(c echo.Context) error {
	var body RegisterAssistantRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterAssistantCommand(CallerFrom(c), id, body.Name, body.Phone)
	if err != nil {
		return s.fail(c, err)
	}
	return s.created(c, id, s.h.RegisterFleetResource.HandleAssistant(c.Request().Context(), cmd))
}

func (s *Server) RegisterContainer(c echo.Context) error {
	var body RegisterContainerRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterContainerCommand(CallerFrom(c), id, body.ContainerNumber)
	if err != nil {
		return s.fail(c, err)
	}
	return s.created(c, id, s.h.RegisterFleetResource.HandleContainer(c.Request().Context(), cmd))
}

// CreateTransportUnit handles POST /api/v1/transport-units.
func (s *Server) CreateTransportUnit(c echo.Context) error {
	var body CreateTransportUnitRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	lorryID, lorryErr := requiredUUID("lorryId", body.LorryID)
	driverID, driverErr := requiredUUID("driverId", body.DriverID)
	assistantID, assistantErr := optionalUUID("assistantId", body.AssistantID)
	containerID, containerErr := requiredUUID("containerId", body.ContainerID)
	if err := errors.Join(lorryErr, driverErr, assistantErr, containerErr); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportUnitCommand(
		CallerFrom(c), id, body.UnitNumber, lorryID, driverID, assistantID, containerID,
	)
	if err != nil {
		return s.fail(c, err)
	}
	return s.created(c, id, s.h.CreateTransportUnit.Handle(c.Request().Context(), cmd))
}

// ListTransportUnits handles GET /api/v1/transport-units.
func (s *Server) ListTransportUnits(c echo.Context) error {
	query, err := queries.NewListTransportUnitsQuery(CallerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	units, err := s.h.ListTransportUnits.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toTransportUnitResponses(units))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := queries.NewGetDashboardQuery(CallerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	d, err := s.h.GetDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		TotalJobs:      d.TotalJobs,
		InProgressJobs: d.InProgressJobs,
		CompletedJobs:  d.CompletedJobs,
		CancelledJobs:  d.CancelledJobs,
	})
}

// DeleteEntity handles DELETE /api/v1/entities/{kind}/{id}.
func (s *Server) DeleteEntity(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteEntityCommand(CallerFrom(c), c.Param("kind"), id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteEntity.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) created(c echo.Context, id kernel.UUID, err error) error {
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}
