// Package loadrepo persists the Load aggregate.
package loadrepo

import (
	"time"

	"eshift/internal/adapters/out/postgres/fleetrepo"
	"eshift/internal/adapters/out/postgres/jobrepo"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadDTO is the loads table. Loads cascade with their job; a referenced transport unit
// cannot be deleted. LoadNumber is indexed but not unique.
type LoadDTO struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	JobID           uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Job             *jobrepo.JobDTO             `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	LoadNumber      string                      `gorm:"size:50;not null;index"`
	TransportUnitID *uuid.UUID                  `gorm:"type:uuid;index"`
	TransportUnit   *fleetrepo.TransportUnitDTO `gorm:"foreignKey:TransportUnitID;constraint:OnDelete:RESTRICT"`
	Description     string                      `gorm:"size:250;not null"`
	WeightKg        decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	PickupDate      time.Time                   `gorm:"not null"`
	DeliveryDate    *time.Time
	Status          int `gorm:"not null;index"`
	Version         int `gorm:"not null;default:1"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

func fromDomain(l *load.Load) LoadDTO {
	return LoadDTO{
		ID:              l.ID().Bytes(),
		JobID:           l.JobID().Bytes(),
		LoadNumber:      l.Number().String(),
		TransportUnitID: kernel.NullableBytes(l.TransportUnitID()),
		Description:     l.Description(),
		WeightKg:        l.Weight().Kg(),
		PickupDate:      l.PickupDate(),
		DeliveryDate:    l.DeliveryDate(),
		Status:          int(l.Status()),
		Version:         l.Version(),
	}
}

func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	unitID, err := kernel.UUIDFromNullable(dto.TransportUnitID)
	if err != nil {
		return nil, err
	}
	number, err := load.NumberFromString(dto.LoadNumber)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight("weightKg", dto.WeightKg, load.MaxWeightKg)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(
		id, jobID, number, unitID, dto.Description, weight,
		dto.PickupDate, dto.DeliveryDate, load.Status(dto.Status), dto.Version,
	)
}
