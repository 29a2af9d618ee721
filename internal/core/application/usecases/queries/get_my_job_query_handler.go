package queries

import (
	"context"
	"time"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMyJobQueryHandler assembles JobDetails with three reads: the job, its loads and
// the product lines of those loads.
type GetMyJobQueryHandler struct {
	db *gorm.DB
}

func NewGetMyJobQueryHandler(db *gorm.DB) GetMyJobQueryHandler {
	return GetMyJobQueryHandler{db: db}
}

type loadRow struct {
	ID              uuid.UUID
	LoadNumber      string
	TransportUnitID *uuid.UUID
	Description     string
	WeightKg        decimal.Decimal
	PickupDate      time.Time
	DeliveryDate    *time.Time
	Status          int
	Version         int
}

type lineRow struct {
	LoadID    uuid.UUID
	ProductID uuid.UUID
	Name      string
	Category  string
	WeightKg  decimal.Decimal
	Quantity  int
	IsValid   bool
}

func (h GetMyJobQueryHandler) Handle(ctx context.Context, query GetMyJobQuery) (JobDetails, error) {
	if err := query.Validate(); err != nil {
		return JobDetails{}, err
	}

	customerID, err := customerIDFor(ctx, h.db, query.Caller())
	if err != nil {
		return JobDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var jobs []jobRow
	err = db.Table("jobs").
		Select(jobSummaryColumns).
		Where("jobs.id = ? AND jobs.customer_id = ?", query.JobID().Bytes(), customerID).
		Limit(1).
		Scan(&jobs).Error
	if err != nil {
		return JobDetails{}, err
	}
	if len(jobs) == 0 {
		return JobDetails{}, errs.NewObjectNotFoundError("jobId", query.JobID())
	}

	summary, err := jobs[0].toSummary()
	if err != nil {
		return JobDetails{}, err
	}

	var loads []loadRow
	err = db.Table("loads").
		Select("id, load_number, transport_unit_id, description, weight_kg, pickup_date, delivery_date, status, version").
		Where("job_id = ?", query.JobID().Bytes()).
		Order("pickup_date, load_number").
		Scan(&loads).Error
	if err != nil {
		return JobDetails{}, err
	}

	var lines []lineRow
	err = db.Table("load_products").
		Select(`load_products.load_id, load_products.product_id, products.name, products.category,
			products.weight_kg, load_products.quantity, products.is_valid`).
		Joins("JOIN products ON products.id = load_products.product_id").
		Joins("JOIN loads ON loads.id = load_products.load_id").
		Where("loads.job_id = ?", query.JobID().Bytes()).
		Order("products.name").
		Scan(&lines).Error
	if err != nil {
		return JobDetails{}, err
	}

	byLoad := make(map[uuid.UUID][]LoadProductLine, len(loads))
	for _, l := range lines {
		productID, idErr := kernel.UUIDFromBytes(l.ProductID[:])
		if idErr != nil {
			return JobDetails{}, idErr
		}
		byLoad[l.LoadID] = append(byLoad[l.LoadID], LoadProductLine{
			ProductID:    productID,
			Name:         l.Name,
			Category:     l.Category,
			UnitWeightKg: l.WeightKg,
			Quantity:     l.Quantity,
			IsValid:      l.IsValid,
		})
	}

	details := JobDetails{JobSummary: summary, Loads: make([]LoadDetails, 0, len(loads))}
	for _, l := range loads {
		id, idErr := kernel.UUIDFromBytes(l.ID[:])
		if idErr != nil {
			return JobDetails{}, idErr
		}
		unitID, idErr := kernel.UUIDFromNullable(l.TransportUnitID)
		if idErr != nil {
			return JobDetails{}, idErr
		}
		status := load.Status(l.Status)
		if err = status.Validate(); err != nil {
			return JobDetails{}, err
		}
		details.Loads = append(details.Loads, LoadDetails{
			ID:              id,
			LoadNumber:      l.LoadNumber,
			TransportUnitID: unitID,
			Description:     l.Description,
			WeightKg:        l.WeightKg,
			PickupDate:      l.PickupDate,
			DeliveryDate:    l.DeliveryDate,
			Status:          status,
			Version:         l.Version,
			Products:        byLoad[l.ID],
		})
	}

	return details, nil
}
