// Package productrepo persists the Product aggregate.
package productrepo

import (
	"eshift/internal/adapters/out/postgres/customerrepo"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table. A customer cannot be deleted while it owns products.
type ProductDTO struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Customer    *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Name        string                    `gorm:"size:100;not null"`
	Category    string                    `gorm:"size:50"`
	Description string                    `gorm:"size:500"`
	WeightKg    decimal.Decimal           `gorm:"type:numeric(10,2);not null"`
	IsValid     bool                      `gorm:"not null;default:false"`
	Version     int                       `gorm:"not null;default:1"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	d := p.Details()
	return ProductDTO{
		ID:          p.ID().Bytes(),
		CustomerID:  p.CustomerID().Bytes(),
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		WeightKg:    p.Weight().Kg(),
		IsValid:     p.IsValid(),
		Version:     p.Version(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight("weightKg", dto.WeightKg, product.MaxWeightKg)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, customerID, product.Details{
		Name:        dto.Name,
		Category:    dto.Category,
		Description: dto.Description,
	}, weight, dto.IsValid, dto.Version)
}
