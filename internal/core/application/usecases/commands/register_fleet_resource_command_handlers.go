package commands

import (
	"context"

	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/ports"
)

// RegisterFleetResourceCommandHandler registers lorries, drivers, assistants and containers.
//
// Example:
//
//	h := NewRegisterFleetResourceCommandHandler(fleetUoWFactory)
//	cmd, _ := NewRegisterLorryCommand(admin, kernel.NewUUID(), "WP CAB-1234", "Isuzu Elf")
//	err := h.HandleLorry(ctx, cmd)
type RegisterFleetResourceCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewRegisterFleetResourceCommandHandler(uowFactory FleetUoWFactory) RegisterFleetResourceCommandHandler {
	return RegisterFleetResourceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterFleetResourceCommandHandler) HandleLorry(ctx context.Context, cmd RegisterLorryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	lorry, err := fleet.NewLorry(cmd.ID(), cmd.NumberPlate, cmd.Model)
	if err != nil {
		return err
	}
	return h.add(ctx, func(repo ports.FleetRepository) error {
		return repo.AddLorry(ctx, lorry)
	})
}

func (h RegisterFleetResourceCommandHandler) HandleDriver(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	driver, err := fleet.NewDriver(cmd.ID(), cmd.Name, cmd.LicenseNumber, cmd.Phone)
	if err != nil {
		return err
	}
	return h.add(ctx, func(repo ports.FleetRepository) error {
		return repo.AddDriver(ctx, driver)
	})
}

func (h RegisterFleetResourceCommandHandler) HandleAssistant(ctx context.Context, cmd RegisterAssistantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	assistant, err := fleet.NewAssistant(cmd.ID(), cmd.Name, cmd.Phone)
	if err != nil {
		return err
	}
	return h.add(ctx, func(repo ports.FleetRepository) error {
		return repo.AddAssistant(ctx, assistant)
	})
}

func (h RegisterFleetResourceCommandHandler) HandleContainer(ctx context.Context, cmd RegisterContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	container, err := fleet.NewContainer(cmd.ID(), cmd.ContainerNumber)
	if err != nil {
		return err
	}
	return h.add(ctx, func(repo ports.FleetRepository) error {
		return repo.AddContainer(ctx, container)
	})
}

func (h RegisterFleetResourceCommandHandler) add(ctx context.Context, write func(ports.FleetRepository) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := write(uow.FleetRepository()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
