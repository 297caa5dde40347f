// Package repository wires the gorm-backed stores into a unit of work.
package repository

import (
	"context"

	"gorm.io/gorm"

	accountstore "github.com/novinbank/ledger/infra/repository/account"
	customerstore "github.com/novinbank/ledger/infra/repository/customer"
	transactionstore "github.com/novinbank/ledger/infra/repository/transaction"
	"github.com/novinbank/ledger/pkg/repository"
)

// UoW provides a transaction boundary and repository access in one
// abstraction. Every repository obtained inside Do shares the same DB
// session, so the callback's writes commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. An error from fn rolls the
// transaction back; a nil return commits it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// CustomerRepository returns a customer repository bound to the active
// session.
func (u *UoW) CustomerRepository() (repository.CustomerRepository, error) {
	return customerstore.New(u.session()), nil
}

// AccountRepository returns an account repository bound to the active
// session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return accountstore.New(u.session()), nil
}

// TransactionRepository returns a transaction repository bound to the active
// session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return transactionstore.New(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
