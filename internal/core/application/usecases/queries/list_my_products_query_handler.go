package queries

import (
	"context"

	"eshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListMyProductsQueryHandler struct {
	db *gorm.DB
}

func NewListMyProductsQueryHandler(db *gorm.DB) ListMyProductsQueryHandler {
	return ListMyProductsQueryHandler{db: db}
}

// Handle returns the caller's products ordered by name.
func (h ListMyProductsQueryHandler) Handle(ctx context.Context, query ListMyProductsQuery) ([]ProductSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customerID, err := customerIDFor(ctx, h.db, query.Caller())
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID          uuid.UUID
		Name        string
		Category    string
		Description string
		WeightKg    decimal.Decimal
		IsValid     bool
		Version     int
	}
	err = h.db.WithContext(ctx).
		Table("products").
		Select("id, name, category, description, weight_kg, is_valid, version").
		Where("customer_id = ?", customerID).
		Order("name, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ProductSummary, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		out = append(out, ProductSummary{
			ID:          id,
			Name:        r.Name,
			Category:    r.Category,
			Description: r.Description,
			WeightKg:    r.WeightKg,
			IsValid:     r.IsValid,
			Version:     r.Version,
		})
	}

	return out, nil
}
