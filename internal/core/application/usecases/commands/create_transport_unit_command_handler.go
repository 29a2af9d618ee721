package commands

import (
	"context"
	"errors"

	"eshift/internal/core/domain/model/fleet"
)

// CreateTransportUnitCommandHandler checks that every referenced resource exists, then adds the unit.
// Missing resources are reported together as NotFound errors.
type CreateTransportUnitCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewCreateTransportUnitCommandHandler(uowFactory FleetUoWFactory) CreateTransportUnitCommandHandler {
	return CreateTransportUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateTransportUnitCommandHandler) Handle(ctx context.Context, cmd CreateTransportUnitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unit, err := fleet.NewTransportUnit(
		cmd.UnitID(),
		cmd.UnitNumber(),
		cmd.LorryID(),
		cmd.DriverID(),
		cmd.AssistantID(),
		cmd.ContainerID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.FleetRepository()

	_, lorryErr := repo.GetLorry(ctx, unit.LorryID())
	_, driverErr := repo.GetDriver(ctx, unit.DriverID())
	_, containerErr := repo.GetContainer(ctx, unit.ContainerID())
	var assistantErr error
	if id := unit.AssistantID(); id != nil {
		_, assistantErr = repo.GetAssistant(ctx, *id)
	}
	if err = errors.Join(lorryErr, driverErr, containerErr, assistantErr); err != nil {
		return err
	}

	if err = repo.AddTransportUnit(ctx, unit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
