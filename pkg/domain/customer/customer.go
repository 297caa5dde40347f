// Package customer provides the Customer aggregate root. A customer owns the
// validated identity value objects and a simple active/inactive/suspended
// lifecycle; accounts reference customers by id only.
package customer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/identity"
)

var (
	// ErrFirstNameRequired is returned when the first name is blank.
	ErrFirstNameRequired = fmt.Errorf("%w: first name is required", domain.ErrValidation)
	// ErrLastNameRequired is returned when the last name is blank.
	ErrLastNameRequired = fmt.Errorf("%w: last name is required", domain.ErrValidation)
	// ErrCustomerNotFound is returned when a customer cannot be found.
	ErrCustomerNotFound = fmt.Errorf("%w: customer not found", domain.ErrNotFound)
	// ErrNationalCodeTaken is returned when the national identity code is
	// already registered to another customer.
	ErrNationalCodeTaken = fmt.Errorf("%w: national identity code already registered", domain.ErrValidation)
)

// Status is the customer lifecycle status.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Customer is an aggregate root. All fields are private; state changes go
// through methods that re-validate their inputs.
type Customer struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	nationalCode identity.NationalIDCode
	email        identity.EmailAddress
	phone        identity.PhoneNumber
	dateOfBirth  time.Time
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// New creates an active Customer, delegating identity validation to the
// value-object constructors. Any of their failures propagates unchanged.
func New(firstName, lastName, nationalCode, email, phone string, dateOfBirth time.Time) (*Customer, error) {
	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	if lastName == "" {
		return nil, ErrLastNameRequired
	}
	code, err := identity.NewNationalIDCode(nationalCode)
	if err != nil {
		return nil, err
	}
	mail, err := identity.NewEmailAddress(email)
	if err != nil {
		return nil, err
	}
	tel, err := identity.NewPhoneNumber(phone)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Customer{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		nationalCode: code,
		email:        mail,
		phone:        tel,
		dateOfBirth:  dateOfBirth,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewFromData rebuilds a Customer from stored data. This bypasses invariants
// and should only be used for repository hydration or tests.
func NewFromData(
	id uuid.UUID,
	firstName, lastName string,
	nationalCode identity.NationalIDCode,
	email identity.EmailAddress,
	phone identity.PhoneNumber,
	dateOfBirth time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		nationalCode: nationalCode,
		email:        email,
		phone:        phone,
		dateOfBirth:  dateOfBirth,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateInfo mutates name, email, and phone. Email and phone are re-validated
// through their constructors; name fields are overwritten as given, their
// shape is a request-input concern.
func (c *Customer) UpdateInfo(firstName, lastName, email, phone string) error {
	mail, err := identity.NewEmailAddress(email)
	if err != nil {
		return err
	}
	tel, err := identity.NewPhoneNumber(phone)
	if err != nil {
		return err
	}
	c.firstName = firstName
	c.lastName = lastName
	c.email = mail
	c.phone = tel
	c.updatedAt = time.Now().UTC()
	return nil
}

// Activate sets the customer active.
func (c *Customer) Activate() {
	c.status = StatusActive
	c.updatedAt = time.Now().UTC()
}

// Deactivate sets the customer inactive.
func (c *Customer) Deactivate() {
	c.status = StatusInactive
	c.updatedAt = time.Now().UTC()
}

// Suspend sets the customer suspended.
func (c *Customer) Suspend() {
	c.status = StatusSuspended
	c.updatedAt = time.Now().UTC()
}

func (c *Customer) ID() uuid.UUID                         { return c.id }
func (c *Customer) FirstName() string                     { return c.firstName }
func (c *Customer) LastName() string                      { return c.lastName }
func (c *Customer) FullName() string                      { return c.firstName + " " + c.lastName }
func (c *Customer) NationalCode() identity.NationalIDCode { return c.nationalCode }
func (c *Customer) Email() identity.EmailAddress          { return c.email }
func (c *Customer) Phone() identity.PhoneNumber           { return c.phone }
func (c *Customer) DateOfBirth() time.Time                { return c.dateOfBirth }
func (c *Customer) Status() Status                        { return c.status }
func (c *Customer) IsActive() bool                        { return c.status == StatusActive }
func (c *Customer) CreatedAt() time.Time                  { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time                  { return c.updatedAt }
