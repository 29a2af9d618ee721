package commands_test

import (
	"context"

	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/core/domain/model/loadproduct"
	"eshift/internal/core/domain/model/product"
	"eshift/internal/core/domain/services"
	"eshift/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(ctx context.Context, userID string) (*customer.Customer, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*job.Job)
	return j, args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*job.Job)
	return j, args.Error(1)
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

func (m *MockLoadRepository) GetByJobForUpdate(ctx context.Context, jobID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, jobID)
	l, _ := args.Get(0).([]*load.Load)
	return l, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type MockLoadProductRepository struct{ mock.Mock }

func (m *MockLoadProductRepository) Add(ctx context.Context, lp *loadproduct.LoadProduct) error {
	return m.Called(ctx, lp).Error(0)
}

type MockFleetRepository struct{ mock.Mock }

func (m *MockFleetRepository) AddLorry(ctx context.Context, l *fleet.Lorry) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockFleetRepository) AddDriver(ctx context.Context, d *fleet.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockFleetRepository) AddAssistant(ctx context.Context, a *fleet.Assistant) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockFleetRepository) AddContainer(ctx context.Context, c *fleet.Container) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockFleetRepository) AddTransportUnit(ctx context.Context, u *fleet.TransportUnit) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockFleetRepository) GetTransportUnit(ctx context.Context, id kernel.UUID) (*fleet.TransportUnit, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*fleet.TransportUnit)
	return u, args.Error(1)
}

func (m *MockFleetRepository) GetLorry(ctx context.Context, id kernel.UUID) (*fleet.Lorry, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*fleet.Lorry)
	return l, args.Error(1)
}

func (m *MockFleetRepository) GetDriver(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*fleet.Driver)
	return d, args.Error(1)
}

func (m *MockFleetRepository) GetAssistant(ctx context.Context, id kernel.UUID) (*fleet.Assistant, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*fleet.Assistant)
	return a, args.Error(1)
}

func (m *MockFleetRepository) GetContainer(ctx context.Context, id kernel.UUID) (*fleet.Container, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*fleet.Container)
	return c, args.Error(1)
}

type MockRemovalStore struct{ mock.Mock }

func (m *MockRemovalStore) Exists(ctx context.Context, kind services.Kind, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRemovalStore) DependentIDs(
	ctx context.Context,
	rule services.Rule,
	principalIDs []kernel.UUID,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, rule, principalIDs)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

func (m *MockRemovalStore) Execute(ctx context.Context, plan services.RemovalPlan) error {
	return m.Called(ctx, plan).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	return m.Called().Get(0).(ports.JobRepository)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	return m.Called().Get(0).(ports.LoadRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) LoadProductRepository() ports.LoadProductRepository {
	return m.Called().Get(0).(ports.LoadProductRepository)
}

func (m *MockUoW) FleetRepository() ports.FleetRepository {
	return m.Called().Get(0).(ports.FleetRepository)
}

func (m *MockUoW) RemovalStore() ports.RemovalStore {
	return m.Called().Get(0).(ports.RemovalStore)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	return m.Called().Get(0).(commands.FleetUoW)
}
