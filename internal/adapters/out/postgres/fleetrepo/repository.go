package fleetrepo

import (
	"context"
	"errors"

	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFleetRepository implements ports.FleetRepository using GORM.
// Fleet entities raise no events and are not tracked.
type GormFleetRepository struct {
	db *gorm.DB
}

func NewGormFleetRepository(db *gorm.DB) *GormFleetRepository {
	return &GormFleetRepository{db: db}
}

func (r *GormFleetRepository) AddLorry(ctx context.Context, lorry *fleet.Lorry) error {
	if err := lorry.Validate(); err != nil {
		return err
	}
	dto := LorryDTO{ID: lorry.ID().Bytes(), NumberPlate: lorry.NumberPlate(), Model: lorry.Model()}
	return r.create(ctx, &dto, "lorry")
}

func (r *GormFleetRepository) AddDriver(ctx context.Context, driver *fleet.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	dto := DriverDTO{
		ID:            driver.ID().Bytes(),
		Name:          driver.Name(),
		LicenseNumber: driver.LicenseNumber(),
		Phone:         driver.Phone(),
	}
	return r.create(ctx, &dto, "driver")
}

func (r *GormFleetRepository) AddAssistant(ctx context.Context, assistant *fleet.Assistant) error {
	if err := assistant.Validate(); err != nil {
		return err
	}
	dto := AssistantDTO{ID: assistant.ID().Bytes(), Name: assistant.Name(), Phone: assistant.Phone()}
	return r.create(ctx, &dto, "assistant")
}

func (r *GormFleetRepository) AddContainer(ctx context.Context, container *fleet.Container) error {
	if err := container.Validate(); err != nil {
		return err
	}
	dto := ContainerDTO{ID: container.ID().Bytes(), ContainerNumber: container.ContainerNumber()}
	return r.create(ctx, &dto, "container")
}

// AddTransportUnit inserts the unit; a missing lorry, driver, assistant or container is a
// ConflictError raised by the foreign keys.
func (r *GormFleetRepository) AddTransportUnit(ctx context.Context, unit *fleet.TransportUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	dto := transportUnitFromDomain(unit)
	if err := r.db.WithContext(ctx).Omit("Lorry", "Driver", "Assistant", "Container").Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "transport_unit")
	}
	return nil
}

func (r *GormFleetRepository) GetTransportUnit(ctx context.Context, id kernel.UUID) (*fleet.TransportUnit, error) {
	var dto TransportUnitDTO
	if err := r.first(ctx, &dto, id, "transport_unit"); err != nil {
		return nil, err
	}
	return transportUnitToDomain(dto)
}

func (r *GormFleetRepository) GetLorry(ctx context.Context, id kernel.UUID) (*fleet.Lorry, error) {
	var dto LorryDTO
	if err := r.first(ctx, &dto, id, "lorry"); err != nil {
		return nil, err
	}
	return lorryToDomain(dto)
}

func (r *GormFleetRepository) GetDriver(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	var dto DriverDTO
	if err := r.first(ctx, &dto, id, "driver"); err != nil {
		return nil, err
	}
	return driverToDomain(dto)
}

func (r *GormFleetRepository) GetAssistant(ctx context.Context, id kernel.UUID) (*fleet.Assistant, error) {
	var dto AssistantDTO
	if err := r.first(ctx, &dto, id, "assistant"); err != nil {
		return nil, err
	}
	return assistantToDomain(dto)
}

func (r *GormFleetRepository) GetContainer(ctx context.Context, id kernel.UUID) (*fleet.Container, error) {
	var dto ContainerDTO
	if err := r.first(ctx, &dto, id, "container"); err != nil {
		return nil, err
	}
	return containerToDomain(dto)
}

func (r *GormFleetRepository) create(ctx context.Context, dto any, paramName string) error {
	if err := r.db.WithContext(ctx).Create(dto).Error; err != nil {
		return pgerrors.Translate(err, paramName)
	}
	return nil
}

func (r *GormFleetRepository) first(ctx context.Context, dto any, id kernel.UUID, paramName string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(paramName, id.String())
		}
		return err
	}
	return nil
}
