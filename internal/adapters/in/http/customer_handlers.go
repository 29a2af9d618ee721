package http

import (
	"errors"
	"net/http"

	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/core/application/usecases/queries"
	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCustomer handles POST /api/v1/customers/me.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var body RegisterCustomerRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(CallerFrom(c), id, body.Name, customer.Contact{
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RegisterCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// RequestJob handles POST /api/v1/jobs.
func (s *Server) RequestJob(c echo.Context) error {
	var body RequestJobRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customerID, customerErr := requiredUUID("customerId", body.CustomerID)
	jobDate, dateErr := parseDate("jobDate", body.JobDate)
	loads, loadsErr := toLoadRequests(body.Loads)
	if err := errors.Join(customerErr, dateErr, loadsErr); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRequestJobCommand(
		CallerFrom(c), id, customerID, body.StartLocation, body.Destination, jobDate, loads,
	)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RequestJob.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

func toLoadRequests(in []LoadRequest) ([]commands.LoadRequest, error) {
	out := make([]commands.LoadRequest, len(in))
	var errList []error
	for i, l := range in {
		pickup, err := parseDate("pickupDate", l.PickupDate)
		if err != nil {
			errList = append(errList, err)
		}
		products := make([]commands.ProductRequest, len(l.Products))
		for k, p := range l.Products {
			products[k] = commands.ProductRequest{
				Name:        p.Name,
				Category:    p.Category,
				Description: p.Description,
				UnitWeight:  p.UnitWeightKg,
				Quantity:    p.Quantity,
			}
		}
		out[i] = commands.LoadRequest{
			Description: l.Description,
			Weight:      l.WeightKg,
			PickupDate:  pickup,
			Products:    products,
		}
	}
	return out, errors.Join(errList...)
}

// ListMyJobs handles GET /api/v1/jobs/mine.
func (s *Server) ListMyJobs(c echo.Context) error {
	query, err := queries.NewListMyJobsQuery(CallerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	jobs, err := s.h.ListMyJobs.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toJobSummaryResponses(jobs))
}

// GetMyJob handles GET /api/v1/jobs/mine/{id}.
func (s *Server) GetMyJob(c echo.Context) error {
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetMyJobQuery(CallerFrom(c), jobID)
	if err != nil {
		return s.fail(c, err)
	}

	details, err := s.h.GetMyJob.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toJobDetailsResponse(details))
}

// UpdateJobDetails handles PUT /api/v1/jobs/{id}.
func (s *Server) UpdateJobDetails(c echo.Context) error {
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var body UpdateJobDetailsRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	jobDate, err := parseDate("jobDate", body.JobDate)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateJobDetailsCommand(CallerFrom(c), jobID, body.StartLocation, body.Destination, jobDate, body.Version)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.UpdateJobDetails.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelJob handles POST /api/v1/jobs/{id}/cancel for the owner or an administrator.
func (s *Server) CancelJob(c echo.Context) error {
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelJobCommand(CallerFrom(c), jobID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CancelJob.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMyProducts handles GET /api/v1/products/mine.
func (s *Server) ListMyProducts(c echo.Context) error {
	query, err := queries.NewListMyProductsQuery(CallerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	products, err := s.h.ListMyProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toProductResponses(products))
}
