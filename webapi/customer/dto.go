package customer

import (
	"time"

	"github.com/novinbank/ledger/pkg/domain/customer"
)

// CreateCustomerRequest represents the request body for registering a customer.
type CreateCustomerRequest struct {
	FirstName    string    `json:"first_name" validate:"required,min=2,max=64"`
	LastName     string    `json:"last_name" validate:"required,min=2,max=64"`
	NationalCode string    `json:"national_code" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Phone        string    `json:"phone" validate:"required"`
	DateOfBirth  time.Time `json:"date_of_birth"`
}

// UpdateCustomerRequest represents the request body for updating a customer.
type UpdateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=64"`
	LastName  string `json:"last_name" validate:"required,min=2,max=64"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

// CustomerDTO is the API response representation of a customer.
type CustomerDTO struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	NationalCode string    `json:"national_code"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDTO(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().String(),
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

func toDTOs(cs []*customer.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toDTO(c))
	}
	return out
}
