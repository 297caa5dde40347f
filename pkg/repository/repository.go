// Package repository defines the store contracts the use-case layer depends
// on. Implementations live under infra; the domain never touches a store.
// Every method is a fallible I/O operation and accepts a context for
// cancellation. Storage failures wrap domain.ErrStorage, a missing aggregate
// wraps domain.ErrNotFound.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/transaction"
)

// CustomerRepository persists Customer aggregates.
type CustomerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	GetByNationalCode(ctx context.Context, code string) (*customer.Customer, error)
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
	List(ctx context.Context) ([]*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	NationalCodeExists(ctx context.Context, code string) (bool, error)
}

// AccountRepository persists Account aggregates.
type AccountRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetByNumber(ctx context.Context, number string) (*account.Account, error)
	GetByIBAN(ctx context.Context, iban string) (*account.Account, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error)
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

// TransactionRepository persists Transaction aggregates.
type TransactionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*transaction.Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*transaction.Transaction, error)
	ListBySourceAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error)
	ListByTargetAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*transaction.Transaction, error)
	Create(ctx context.Context, t *transaction.Transaction) error
	Update(ctx context.Context, t *transaction.Transaction) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction, so every repository inside Do shares one DB session. Note the
// domain itself carries no concurrency control for simultaneous mutation of
// one account; callers needing that must add it at the store boundary.
type UnitOfWork interface {
	// Do runs fn inside a storage transaction. Returning an error rolls the
	// transaction back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	CustomerRepository() (CustomerRepository, error)
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
}
