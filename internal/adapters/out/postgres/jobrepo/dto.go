// Package jobrepo persists the Job aggregate.
package jobrepo

import (
	"time"

	"eshift/internal/adapters/out/postgres/customerrepo"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the jobs table. Deleting a customer cascades to its jobs.
type JobDTO struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Customer      *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	StartLocation string                    `gorm:"size:100;not null"`
	Destination   string                    `gorm:"size:100;not null"`
	JobDate       time.Time                 `gorm:"not null;index"`
	Status        int                       `gorm:"not null;index"`
	Version       int                       `gorm:"not null;default:1"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	return JobDTO{
		ID:            j.ID().Bytes(),
		CustomerID:    j.CustomerID().Bytes(),
		StartLocation: j.StartLocation().String(),
		Destination:   j.Destination().String(),
		JobDate:       j.JobDate(),
		Status:        int(j.Status()),
		Version:       j.Version(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	start, err := kernel.NewPlace("startLocation", dto.StartLocation)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewPlace("destination", dto.Destination)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, customerID, start, destination, dto.JobDate, job.Status(dto.Status), dto.Version)
}
