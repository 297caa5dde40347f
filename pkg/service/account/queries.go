package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/money"
	"github.com/novinbank/ledger/pkg/domain/transaction"
	"github.com/novinbank/ledger/pkg/repository"
)

// GetAccount returns an account by id.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (a *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = accounts.Get(ctx, id)
		return err
	})
	return a, err
}

// GetBalance returns the current balance of an account.
func (s *Service) GetBalance(ctx context.Context, id uuid.UUID) (money.Money, error) {
	a, err := s.GetAccount(ctx, id)
	if err != nil {
		return money.Money{}, err
	}
	return a.Balance(), nil
}

// ListAccountsByCustomer returns all accounts owned by a customer.
func (s *Service) ListAccountsByCustomer(ctx context.Context, customerID uuid.UUID) (as []*account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		as, err = accounts.ListByCustomer(ctx, customerID)
		return err
	})
	return as, err
}

// ListTransactions returns the most recent transactions touching an account.
func (s *Service) ListTransactions(ctx context.Context, accountID uuid.UUID, limit int) (txs []*transaction.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = repo.ListByAccount(ctx, accountID, limit)
		return err
	})
	return txs, err
}

// ListTransactionsByDateRange returns transactions created inside [from, to].
func (s *Service) ListTransactionsByDateRange(ctx context.Context, from, to time.Time) (txs []*transaction.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = repo.ListByDateRange(ctx, from, to)
		return err
	})
	return txs, err
}

// GetTransactionByReference returns a transfer by its reference number.
func (s *Service) GetTransactionByReference(ctx context.Context, reference string) (tx *transaction.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.GetByReference(ctx, reference)
		return err
	})
	return tx, err
}

// FreezeAccount moves an account to Frozen.
func (s *Service) FreezeAccount(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, (*account.Account).Freeze)
}

// UnfreezeAccount moves a frozen account back to Active.
func (s *Service) UnfreezeAccount(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, (*account.Account).Unfreeze)
}

// CloseAccount closes a zero-balance account.
func (s *Service) CloseAccount(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, (*account.Account).Close)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, fn func(*account.Account) error) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := accounts.Get(ctx, id)
		if err != nil {
			return err
		}
		if err = fn(a); err != nil {
			return err
		}
		return accounts.Update(ctx, a)
	})
}
