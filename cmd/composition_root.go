package cmd

import (
	"log/slog"

	httpin "eshift/internal/adapters/in/http"
	"eshift/internal/adapters/out/postgres"
	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/core/application/usecases/queries"
	"eshift/internal/core/ports"
	"eshift/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires use cases over gormDB. publisher receives the events of every
// committed unit of work; nil disables publishing.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoW() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoW() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoW())
}

func (c *CompositionRoot) CreateRequestJobCommandHandler() commands.RequestJobCommandHandler {
	return commands.NewRequestJobCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateJobDetailsCommandHandler() commands.UpdateJobDetailsCommandHandler {
	return commands.NewUpdateJobDetailsCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateChangeJobStatusCommandHandler() commands.ChangeJobStatusCommandHandler {
	return commands.NewChangeJobStatusCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignTransportUnitCommandHandler() commands.AssignTransportUnitCommandHandler {
	return commands.NewAssignTransportUnitCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAdvanceLoadStatusCommandHandler() commands.AdvanceLoadStatusCommandHandler {
	return commands.NewAdvanceLoadStatusCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateToggleProductValidationCommandHandler() commands.ToggleProductValidationCommandHandler {
	return commands.NewToggleProductValidationCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRegisterFleetResourceCommandHandler() commands.RegisterFleetResourceCommandHandler {
	return commands.NewRegisterFleetResourceCommandHandler(c.fleetUoW())
}

func (c *CompositionRoot) CreateCreateTransportUnitCommandHandler() commands.CreateTransportUnitCommandHandler {
	return commands.NewCreateTransportUnitCommandHandler(c.fleetUoW())
}

func (c *CompositionRoot) CreateDeleteEntityCommandHandler() commands.DeleteEntityCommandHandler {
	return commands.NewDeleteEntityCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateListMyJobsQueryHandler() queries.ListMyJobsQueryHandler {
	return queries.NewListMyJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyJobQueryHandler() queries.GetMyJobQueryHandler {
	return queries.NewGetMyJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyProductsQueryHandler() queries.ListMyProductsQueryHandler {
	return queries.NewListMyProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListJobsQueryHandler() queries.ListJobsQueryHandler {
	return queries.NewListJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTransportUnitsQueryHandler() queries.ListTransportUnitsQueryHandler {
	return queries.NewListTransportUnitsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects every use case the HTTP surface exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterCustomer:        c.CreateRegisterCustomerCommandHandler(),
		RequestJob:              c.CreateRequestJobCommandHandler(),
		UpdateJobDetails:        c.CreateUpdateJobDetailsCommandHandler(),
		CancelJob:               c.CreateCancelJobCommandHandler(),
		ChangeJobStatus:         c.CreateChangeJobStatusCommandHandler(),
		AssignTransportUnit:     c.CreateAssignTransportUnitCommandHandler(),
		AdvanceLoadStatus:       c.CreateAdvanceLoadStatusCommandHandler(),
		ToggleProductValidation: c.CreateToggleProductValidationCommandHandler(),
		RegisterFleetResource:   c.CreateRegisterFleetResourceCommandHandler(),
		CreateTransportUnit:     c.CreateCreateTransportUnitCommandHandler(),
		DeleteEntity:            c.CreateDeleteEntityCommandHandler(),
		ListMyJobs:              c.CreateListMyJobsQueryHandler(),
		GetMyJob:                c.CreateGetMyJobQueryHandler(),
		ListMyProducts:          c.CreateListMyProductsQueryHandler(),
		ListJobs:                c.CreateListJobsQueryHandler(),
		GetDashboard:            c.CreateGetDashboardQueryHandler(),
		ListTransportUnits:      c.CreateListTransportUnitsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDashboardQueryHandler(), c.cfg.Jobs.DashboardReportSpec, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
