// Package fleetrepo persists transport units and the lorries, drivers, assistants and
// containers they bundle.
package fleetrepo

import (
	"eshift/internal/core/domain/model/fleet"
	"eshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type LorryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NumberPlate string    `gorm:"size:50;not null"`
	Model       string    `gorm:"size:100"`
}

func (LorryDTO) TableName() string {
	return "lorries"
}

type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	LicenseNumber string    `gorm:"size:50;not null"`
	Phone         string    `gorm:"size:20"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type AssistantDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"size:100;not null"`
	Phone string    `gorm:"size:20"`
}

func (AssistantDTO) TableName() string {
	return "assistants"
}

type ContainerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContainerNumber string    `gorm:"size:50;not null"`
}

func (ContainerDTO) TableName() string {
	return "containers"
}

// TransportUnitDTO is the transport_units table. Its foreign keys mirror the deletion
// policy: lorry, driver and container are restricted, the assistant is nulled.
type TransportUnitDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UnitNumber  string        `gorm:"size:50;not null"`
	LorryID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Lorry       *LorryDTO     `gorm:"foreignKey:LorryID;constraint:OnDelete:RESTRICT"`
	DriverID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Driver      *DriverDTO    `gorm:"foreignKey:DriverID;constraint:OnDelete:RESTRICT"`
	AssistantID *uuid.UUID    `gorm:"type:uuid;index"`
	Assistant   *AssistantDTO `gorm:"foreignKey:AssistantID;constraint:OnDelete:SET NULL"`
	ContainerID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Container   *ContainerDTO `gorm:"foreignKey:ContainerID;constraint:OnDelete:RESTRICT"`
}

func (TransportUnitDTO) TableName() string {
	return "transport_units"
}

func transportUnitFromDomain(u *fleet.TransportUnit) TransportUnitDTO {
	return TransportUnitDTO{
		ID:          u.ID().Bytes(),
		UnitNumber:  u.UnitNumber(),
		LorryID:     u.LorryID().Bytes(),
		DriverID:    u.DriverID().Bytes(),
		AssistantID: kernel.NullableBytes(u.AssistantID()),
		ContainerID: u.ContainerID().Bytes(),
	}
}

func transportUnitToDomain(dto TransportUnitDTO) (*fleet.TransportUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	lorryID, err := kernel.UUIDFromBytes(dto.LorryID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}
	assistantID, err := kernel.UUIDFromNullable(dto.AssistantID)
	if err != nil {
		return nil, err
	}

	return fleet.NewTransportUnit(id, dto.UnitNumber, lorryID, driverID, assistantID, containerID)
}

func lorryToDomain(dto LorryDTO) (*fleet.Lorry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return fleet.NewLorry(id, dto.NumberPlate, dto.Model)
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return fleet.NewDriver(id, dto.Name, dto.LicenseNumber, dto.Phone)
}

func assistantToDomain(dto AssistantDTO) (*fleet.Assistant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return fleet.NewAssistant(id, dto.Name, dto.Phone)
}

func containerToDomain(dto ContainerDTO) (*fleet.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return fleet.NewContainer(id, dto.ContainerNumber)
}
