// Package customer provides the customer use-cases: registration with a
// national-code uniqueness check, profile updates, and lifecycle toggles.
package customer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/identity"
	"github.com/novinbank/ledger/pkg/repository"
)

// customerCodeOf normalizes and validates the raw national code so the
// uniqueness check runs against the stored form.
func customerCodeOf(raw string) (string, error) {
	code, err := identity.NewNationalIDCode(raw)
	if err != nil {
		return "", err
	}
	return code.String(), nil
}

// Service orchestrates customer aggregates over the unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a customer Service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, logger: logger}
}

// CreateCommand carries the input for CreateCustomer.
type CreateCommand struct {
	FirstName    string
	LastName     string
	NationalCode string
	Email        string
	Phone        string
	DateOfBirth  time.Time
}

// CreateCustomer registers a new customer. The national identity code must
// not already be registered; uniqueness is a repository query, not a domain
// invariant.
func (s *Service) CreateCustomer(ctx context.Context, cmd CreateCommand) (c *customer.Customer, err error) {
	logger := s.logger.With("operation", "CreateCustomer")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		code, err := customerCodeOf(cmd.NationalCode)
		if err != nil {
			return err
		}
		taken, err := repo.NationalCodeExists(ctx, code)
		if err != nil {
			return err
		}
		if taken {
			return customer.ErrNationalCodeTaken
		}
		c, err = customer.New(cmd.FirstName, cmd.LastName, cmd.NationalCode, cmd.Email, cmd.Phone, cmd.DateOfBirth)
		if err != nil {
			return err
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		logger.Error("create customer failed", "error", err)
		return nil, err
	}
	logger.Info("customer created", "customerID", c.ID(), "nationalCode", c.NationalCode())
	return c, nil
}

// UpdateCommand carries the input for UpdateCustomer.
type UpdateCommand struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// UpdateCustomer mutates a customer's name and contact details.
func (s *Service) UpdateCustomer(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (c *customer.Customer, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err = c.UpdateInfo(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Phone); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		s.logger.Error("update customer failed", "customerID", id, "error", err)
		return nil, err
	}
	return c, nil
}

// ActivateCustomer sets the customer active.
func (s *Service) ActivateCustomer(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, (*customer.Customer).Activate)
}

// DeactivateCustomer sets the customer inactive.
func (s *Service) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, (*customer.Customer).Deactivate)
}

// SuspendCustomer sets the customer suspended.
func (s *Service) SuspendCustomer(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, (*customer.Customer).Suspend)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, transition func(*customer.Customer)) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		transition(c)
		return repo.Update(ctx, c)
	})
}

// GetCustomer returns a customer by id.
func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (c *customer.Customer, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		return err
	})
	return c, err
}

// ListCustomers returns all customers.
func (s *Service) ListCustomers(ctx context.Context) (cs []*customer.Customer, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		cs, err = repo.List(ctx)
		return err
	})
	return cs, err
}

// DeleteCustomer removes a customer record. Deletion is a repository-layer
// operation; the aggregate defines no delete transition.
func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
