package queries

import (
	"context"
	"errors"
	"time"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobSummary is one row of a job list.
type JobSummary struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	StartLocation string
	Destination   string
	JobDate       time.Time
	Status        job.Status
	Version       int
	LoadCount     int
}

// LoadProductLine is a product carried by a load with the requested quantity.
type LoadProductLine struct {
	ProductID    kernel.UUID
	Name         string
	Category     string
	UnitWeightKg decimal.Decimal
	Quantity     int
	IsValid      bool
}

type LoadDetails struct {
	ID              kernel.UUID
	LoadNumber      string
	TransportUnitID *kernel.UUID
	Description     string
	WeightKg        decimal.Decimal
	PickupDate      time.Time
	DeliveryDate    *time.Time
	Status          load.Status
	Version         int
	Products        []LoadProductLine
}

// JobDetails is a job with its loads in pickup order.
type JobDetails struct {
	JobSummary
	Loads []LoadDetails
}

type jobRow struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	StartLocation string
	Destination   string
	JobDate       time.Time
	Status        int
	Version       int
	LoadCount     int
}

const jobSummaryColumns = `jobs.id, jobs.customer_id, jobs.start_location, jobs.destination,
	jobs.job_date, jobs.status, jobs.version,
	(SELECT COUNT(*) FROM loads WHERE loads.job_id = jobs.id) AS load_count`

func (r jobRow) toSummary() (JobSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return JobSummary{}, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return JobSummary{}, err
	}
	status := job.Status(r.Status)
	if err = status.Validate(); err != nil {
		return JobSummary{}, err
	}
	return JobSummary{
		ID:            id,
		CustomerID:    customerID,
		StartLocation: r.StartLocation,
		Destination:   r.Destination,
		JobDate:       r.JobDate,
		Status:        status,
		Version:       r.Version,
		LoadCount:     r.LoadCount,
	}, nil
}

func toSummaries(rows []jobRow) ([]JobSummary, error) {
	out := make([]JobSummary, 0, len(rows))
	for _, r := range rows {
		s, err := r.toSummary()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// customerIDFor resolves the caller's customer id. A caller without a customer row is Unauthorized.
func customerIDFor(ctx context.Context, db *gorm.DB, caller identity.Caller) (uuid.UUID, error) {
	if err := caller.Validate(); err != nil {
		return uuid.Nil, err
	}

	var row struct{ ID uuid.UUID }
	err := db.WithContext(ctx).
		Table("customers").
		Select("id").
		Where("user_id = ?", caller.UserID()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, errs.NewUnauthorizedErrorWithCause("caller", errs.NewObjectNotFoundError("customer", caller.UserID()))
	}
	if err != nil {
		return uuid.Nil, err
	}

	return row.ID, nil
}
