// Package customerrepo persists the Customer aggregate.
package customerrepo

import (
	"time"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers table. UserID is unique: one customer per identity subject.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"size:450;not null;uniqueIndex"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:100"`
	Phone     string    `gorm:"size:20"`
	Address   string    `gorm:"size:250"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	contact := c.Contact()
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		UserID:    c.UserID(),
		Name:      c.Name(),
		Email:     contact.Email,
		Phone:     contact.Phone,
		Address:   contact.Address,
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.UserID, dto.Name, customer.Contact{
		Email:   dto.Email,
		Phone:   dto.Phone,
		Address: dto.Address,
	}, dto.CreatedAt)
}
