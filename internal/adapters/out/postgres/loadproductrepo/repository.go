package loadproductrepo

import (
	"context"

	"eshift/internal/adapters/out/postgres/pgerrors"
	"eshift/internal/core/domain/model/loadproduct"

	"gorm.io/gorm"
)

// GormLoadProductRepository implements ports.LoadProductRepository using GORM.
type GormLoadProductRepository struct {
	db *gorm.DB
}

func NewGormLoadProductRepository(db *gorm.DB) *GormLoadProductRepository {
	return &GormLoadProductRepository{db: db}
}

func (r *GormLoadProductRepository) Add(ctx context.Context, link *loadproduct.LoadProduct) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := fromDomain(link)
	if err := r.db.WithContext(ctx).Omit("Load", "Product").Create(&dto).Error; err != nil {
		return pgerrors.Translate(err, "load_product")
	}
	return nil
}
