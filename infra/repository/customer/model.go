package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/identity"
)

// Customer is the database record for a customer aggregate.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	NationalCode string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Email        string    `gorm:"index;not null"`
	Phone        string    `gorm:"type:varchar(11);not null"`
	DateOfBirth  time.Time
	Status       string `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string { return "customers" }

func toModel(c *customer.Customer) Customer {
	return Customer{
		ID:           c.ID(),
		FirstName:    c.FirstName(),
		LastName:     c.LastName(),
		NationalCode: c.NationalCode().String(),
		Email:        c.Email().String(),
		Phone:        c.Phone().String(),
		DateOfBirth:  c.DateOfBirth(),
		Status:       string(c.Status()),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toDomain(m *Customer) *customer.Customer {
	return customer.NewFromData(
		m.ID,
		m.FirstName,
		m.LastName,
		identity.NationalIDCodeFromData(m.NationalCode),
		identity.EmailAddressFromData(m.Email),
		identity.PhoneNumberFromData(m.Phone),
		m.DateOfBirth,
		customer.Status(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
}
