package commands_test

import (
	"testing"

	"eshift/internal/core/application/usecases/commands"
	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleProductValidationCommandHandler_Handle(t *testing.T) {
	t.Run("should flip the fresh value after a conflict", func(t *testing.T) {
		ctx := t.Context()
		stale := restoreProduct(t, kernel.NewUUID(), false)
		fresh := restoreProduct(t, stale.CustomerID(), true)

		products := new(MockProductRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil).Maybe()
		uow.On("ProductRepository").Return(products)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)

		products.On("Get", ctx, stale.ID()).Return(stale, nil).Once()
		products.On("Update", ctx, stale).Return(errs.NewConflictError("product", "stale")).Once()
		products.On("Get", ctx, stale.ID()).Return(fresh, nil).Once()
		products.On("Update", ctx, fresh).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewToggleProductValidationCommand(adminCaller(t), stale.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewToggleProductValidationCommandHandler(factory).Handle(ctx, cmd))
		assert.False(t, fresh.IsValid())
		products.AssertExpectations(t)
	})

	t.Run("should require the admin role", func(t *testing.T) {
		_, err := commands.NewToggleProductValidationCommand(customerCaller(t, "user-1"), kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func newFleetMocks() (*MockFleetUoWFactory, *MockUoW, *MockFleetRepository) {
	repo := new(MockFleetRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	uow.On("FleetRepository").Return(repo)
	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow, repo
}

func TestRegisterFleetResourceCommandHandler(t *testing.T) {
	t.Run("should register a lorry", func(t *testing.T) {
		ctx := t.Context()
		factory, uow, repo := newFleetMocks()
		id := kernel.NewUUID()
		repo.On("AddLorry", ctx, mock.MatchedBy(func(l *fleet.Lorry) bool {
			return l.ID().IsEqual(id) && l.NumberPlate() == "WP CAB-1234"
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewRegisterLorryCommand(adminCaller(t), id, "WP CAB-1234", "Isuzu Elf")
		require.NoError(t, err)

		require.NoError(t, commands.NewRegisterFleetResourceCommandHandler(factory).HandleLorry(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should register an assistant without a phone", func(t *testing.T) {
		ctx := t.Context()
		factory, uow, repo := newFleetMocks()
		repo.On("AddAssistant", ctx, mock.AnythingOfType("*fleet.Assistant")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewRegisterAssistantCommand(adminCaller(t), kernel.NewUUID(), "Kamal", "")
		require.NoError(t, err)

		require.NoError(t, commands.NewRegisterFleetResourceCommandHandler(factory).HandleAssistant(ctx, cmd))
	})

	t.Run("should validate a driver before opening a transaction", func(t *testing.T) {
		factory, _, _ := newFleetMocks()
		cmd, err := commands.NewRegisterDriverCommand(adminCaller(t), kernel.NewUUID(), "Sunil", "", "")
		require.NoError(t, err)

		err = commands.NewRegisterFleetResourceCommandHandler(factory).HandleDriver(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should require the admin role", func(t *testing.T) {
		_, err := commands.NewRegisterContainerCommand(customerCaller(t, "user-1"), kernel.NewUUID(), "C-1")
		require.ErrorIs(t, err, errs.ErrUnauthorized)

		var zero commands.RegisterContainerCommand
		require.ErrorIs(t, zero.Validate(), commands.ErrRegisterFleetResourceCommandIsNotConstructed)
	})
}

func TestCreateTransportUnitCommandHandler_Handle(t *testing.T) {
	lorryID, driverID, containerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("should add a unit over existing resources", func(t *testing.T) {
		ctx := t.Context()
		factory, uow, repo := newFleetMocks()
		repo.On("GetLorry", ctx, lorryID).Return(nil, nil).Once()
		repo.On("GetDriver", ctx, driverID).Return(nil, nil).Once()
		repo.On("GetContainer", ctx, containerID).Return(nil, nil).Once()
		repo.On("AddTransportUnit", ctx, mock.MatchedBy(func(u *fleet.TransportUnit) bool {
			return u.UnitNumber() == "TU-7" && u.AssistantID() == nil
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewCreateTransportUnitCommand(adminCaller(t), kernel.NewUUID(), "TU-7",
			lorryID, driverID, nil, containerID)
		require.NoError(t, err)

		require.NoError(t, commands.NewCreateTransportUnitCommandHandler(factory).Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should report every missing resource", func(t *testing.T) {
		ctx := t.Context()
		assistantID := kernel.NewUUID()
		factory, _, repo := newFleetMocks()
		repo.On("GetLorry", ctx, lorryID).Return(nil, errs.NewObjectNotFoundError("lorry", lorryID)).Once()
		repo.On("GetDriver", ctx, driverID).Return(nil, nil).Once()
		repo.On("GetContainer", ctx, containerID).Return(nil, nil).Once()
		repo.On("GetAssistant", ctx, assistantID).
			Return(nil, errs.NewObjectNotFoundError("assistant", assistantID)).Once()

		cmd, err := commands.NewCreateTransportUnitCommand(adminCaller(t), kernel.NewUUID(), "TU-7",
			lorryID, driverID, &assistantID, containerID)
		require.NoError(t, err)

		err = commands.NewCreateTransportUnitCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), assistantID.String())
		assert.Contains(t, err.Error(), lorryID.String())
		repo.AssertNotCalled(t, "AddTransportUnit", mock.Anything, mock.Anything)
	})
}

func TestDeleteEntityCommandHandler_Handle(t *testing.T) {
	type deleteMocks struct {
		factory   *MockUoWFactory
		uow       *MockUoW
		store     *MockRemovalStore
		customers *MockCustomerRepository
		products  *MockProductRepository
	}
	setup := func() deleteMocks {
		m := deleteMocks{
			factory:   new(MockUoWFactory),
			uow:       new(MockUoW),
			store:     new(MockRemovalStore),
			customers: new(MockCustomerRepository),
			products:  new(MockProductRepository),
		}
		m.factory.On("Create").Return(m.uow)
		m.uow.On("Begin", mock.Anything).Return(nil)
		m.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
		m.uow.On("RemovalStore").Return(m.store)
		m.uow.On("CustomerRepository").Return(m.customers).Maybe()
		m.uow.On("ProductRepository").Return(m.products).Maybe()
		return m
	}

	t.Run("should let an admin delete a lorry", func(t *testing.T) {
		ctx := t.Context()
		m := setup()
		id := kernel.NewUUID()
		m.store.On("Exists", ctx, mock.Anything, id).Return(true, nil).Once()
		m.store.On("DependentIDs", ctx, mock.Anything, mock.Anything).Return([]kernel.UUID{}, nil)
		m.store.On("Execute", ctx, mock.Anything).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDeleteEntityCommand(adminCaller(t), "lorry", id)
		require.NoError(t, err)

		require.NoError(t, commands.NewDeleteEntityCommandHandler(m.factory).Handle(ctx, cmd))
		m.store.AssertExpectations(t)
	})

	t.Run("should report blocking dependents and remove nothing", func(t *testing.T) {
		ctx := t.Context()
		m := setup()
		id := kernel.NewUUID()
		m.store.On("Exists", ctx, mock.Anything, id).Return(true, nil).Once()
		m.store.On("DependentIDs", ctx, mock.Anything, mock.Anything).Return([]kernel.UUID{kernel.NewUUID()}, nil)

		cmd, err := commands.NewDeleteEntityCommand(adminCaller(t), "driver", id)
		require.NoError(t, err)

		err = commands.NewDeleteEntityCommandHandler(m.factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "transport_unit")
		m.store.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("should let a customer delete their own product", func(t *testing.T) {
		ctx := t.Context()
		m := setup()
		owner := newCustomer(t, "user-1")
		p := restoreProduct(t, owner.ID(), false)
		m.customers.On("GetByUserID", ctx, "user-1").Return(owner, nil).Once()
		m.products.On("Get", ctx, p.ID()).Return(p, nil).Once()
		m.store.On("Exists", ctx, mock.Anything, p.ID()).Return(true, nil).Once()
		m.store.On("DependentIDs", ctx, mock.Anything, mock.Anything).Return([]kernel.UUID{}, nil)
		m.store.On("Execute", ctx, mock.Anything).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDeleteEntityCommand(customerCaller(t, "user-1"), "product", p.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewDeleteEntityCommandHandler(m.factory).Handle(ctx, cmd))
	})

	t.Run("should refuse another customer's product", func(t *testing.T) {
		ctx := t.Context()
		m := setup()
		p := restoreProduct(t, kernel.NewUUID(), false)
		m.customers.On("GetByUserID", ctx, "user-1").Return(newCustomer(t, "user-1"), nil).Once()
		m.products.On("Get", ctx, p.ID()).Return(p, nil).Once()

		cmd, err := commands.NewDeleteEntityCommand(customerCaller(t, "user-1"), "product", p.ID())
		require.NoError(t, err)

		err = commands.NewDeleteEntityCommandHandler(m.factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		m.store.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should refuse other kinds to customers before opening a transaction", func(t *testing.T) {
		m := setup()
		cmd, err := commands.NewDeleteEntityCommand(customerCaller(t, "user-1"), "job", kernel.NewUUID())
		require.NoError(t, err)

		err = commands.NewDeleteEntityCommandHandler(m.factory).Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		m.factory.AssertNotCalled(t, "Create")
	})

	t.Run("should reject unknown kinds", func(t *testing.T) {
		_, err := commands.NewDeleteEntityCommand(adminCaller(t), "warehouse", kernel.NewUUID())
		require.Error(t, err)
	})
}
