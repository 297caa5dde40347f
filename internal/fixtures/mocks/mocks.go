// Package mocks provides hand-written testify mocks for the repository
// contracts, used by the service-layer tests.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/transaction"
	"github.com/novinbank/ledger/pkg/repository"
)

// UnitOfWork is a mock repository.UnitOfWork. Do runs the given function
// against the mock itself, so tests wire repository expectations directly.
type UnitOfWork struct {
	mock.Mock
	Customers    *CustomerRepository
	Accounts     *AccountRepository
	Transactions *TransactionRepository
}

// NewUnitOfWork creates a UnitOfWork whose repository accessors return the
// attached mocks.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Customers:    &CustomerRepository{},
		Accounts:     &AccountRepository{},
		Transactions: &TransactionRepository{},
	}
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *UnitOfWork) CustomerRepository() (repository.CustomerRepository, error) {
	return m.Customers, nil
}

func (m *UnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return m.Accounts, nil
}

func (m *UnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return m.Transactions, nil
}

// AssertExpectations asserts expectations on every attached mock.
func (m *UnitOfWork) AssertExpectations(t mock.TestingT) bool {
	ok := m.Customers.AssertExpectations(t)
	ok = m.Accounts.AssertExpectations(t) && ok
	return m.Transactions.AssertExpectations(t) && ok
}

// CustomerRepository is a mock repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepository) GetByNationalCode(ctx context.Context, code string) (*customer.Customer, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*customer.Customer)
	return cs, args.Error(1)
}

func (m *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepository) NationalCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// AccountRepository is a mock repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *AccountRepository) GetByNumber(ctx context.Context, number string) (*account.Account, error) {
	args := m.Called(ctx, number)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *AccountRepository) GetByIBAN(ctx context.Context, iban string) (*account.Account, error) {
	args := m.Called(ctx, iban)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *AccountRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, customerID)
	as, _ := args.Get(0).([]*account.Account)
	return as, args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AccountRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *AccountRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// TransactionRepository is a mock repository.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *TransactionRepository) GetByReference(ctx context.Context, reference string) (*transaction.Transaction, error) {
	args := m.Called(ctx, reference)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, accountID, limit)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *TransactionRepository) ListBySourceAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, accountID)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *TransactionRepository) ListByTargetAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, accountID)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *TransactionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, from, to)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	return txs, args.Error(1)
}

func (m *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *TransactionRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
