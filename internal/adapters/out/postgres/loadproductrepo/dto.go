// Package loadproductrepo persists links between loads and products.
package loadproductrepo

import (
	"eshift/internal/adapters/out/postgres/loadrepo"
	"eshift/internal/adapters/out/postgres/productrepo"
	"eshift/internal/core/domain/model/loadproduct"

	"github.com/google/uuid"
)

// LoadProductDTO is the load_products table. Links go with their load; a linked product
// cannot be deleted. (load_id, product_id) is not unique.
type LoadProductDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	LoadID    uuid.UUID               `gorm:"type:uuid;not null;index"`
	Load      *loadrepo.LoadDTO       `gorm:"foreignKey:LoadID;constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int                     `gorm:"not null"`
}

func (LoadProductDTO) TableName() string {
	return "load_products"
}

func fromDomain(lp *loadproduct.LoadProduct) LoadProductDTO {
	return LoadProductDTO{
		ID:        lp.ID().Bytes(),
		LoadID:    lp.LoadID().Bytes(),
		ProductID: lp.ProductID().Bytes(),
		Quantity:  lp.Quantity(),
	}
}
