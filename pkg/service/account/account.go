// Package account provides the money-movement use-cases: account opening,
// deposit, withdrawal, and transfer. Each use-case is a linear script over
// the aggregates and the unit of work; domain invariants live in the
// aggregates themselves.
//
// Failure semantics follow the ledger's established behavior:
//   - Deposit propagates domain failures with no transaction record.
//   - Withdraw persists a Failed transaction before re-returning the error.
//   - Transfer reports failures through a TransferResult instead of an error,
//     persisting a Failed transaction on domain failure.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/domain/money"
	"github.com/novinbank/ledger/pkg/domain/transaction"
	"github.com/novinbank/ledger/pkg/repository"
)

// Service orchestrates account and transaction aggregates over the unit of
// work.
type Service struct {
	uow     repository.UnitOfWork
	refs    *transaction.RefGenerator
	numbers *NumberGenerator
	logger  *slog.Logger
}

// NewService creates an account Service. Nil generators fall back to
// wall-clock seeded ones; tests pass deterministic instances.
func NewService(
	uow repository.UnitOfWork,
	refs *transaction.RefGenerator,
	numbers *NumberGenerator,
	logger *slog.Logger,
) *Service {
	if refs == nil {
		refs = transaction.NewRefGenerator(nil, nil)
	}
	if numbers == nil {
		numbers = NewNumberGenerator(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, refs: refs, numbers: numbers, logger: logger}
}

// CreateAccountCommand carries the input for CreateAccount.
type CreateAccountCommand struct {
	CustomerID     uuid.UUID
	Type           string
	InitialBalance decimal.Decimal
	Currency       string
}

// CreateAccount opens an account for an existing customer. An unrecognized
// account-type string falls back to the current type. The account number and
// IBAN are generated here, not supplied by the caller.
func (s *Service) CreateAccount(ctx context.Context, cmd CreateAccountCommand) (a *account.Account, err error) {
	logger := s.logger.With("operation", "CreateAccount", "customerID", cmd.CustomerID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		exists, err := customers.Exists(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return customer.ErrCustomerNotFound
		}
		balance, err := money.New(cmd.InitialBalance, currency.Code(cmd.Currency))
		if err != nil {
			return err
		}
		a, err = account.New().
			WithCustomerID(cmd.CustomerID).
			WithNumber(s.numbers.AccountNumber()).
			WithIBAN(s.numbers.IBAN()).
			WithType(account.ParseType(cmd.Type)).
			WithBalance(balance).
			Build()
		if err != nil {
			return err
		}
		return accounts.Create(ctx, a)
	})
	if err != nil {
		logger.Error("create account failed", "error", err)
		return nil, err
	}
	logger.Info("account created", "accountID", a.ID(), "number", a.Number(), "type", a.Type())
	return a, nil
}

// MovementCommand carries the input for Deposit and Withdraw.
type MovementCommand struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// Deposit adds funds to an account and records a Completed transaction.
// Domain failures propagate uncaught and leave no transaction record.
func (s *Service) Deposit(ctx context.Context, cmd MovementCommand) (tx *transaction.Transaction, err error) {
	logger := s.logger.With("operation", "Deposit", "accountID", cmd.AccountID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.Get(ctx, cmd.AccountID)
		if err != nil {
			return err
		}
		amount, err := money.New(cmd.Amount, currency.Code(cmd.Currency))
		if err != nil {
			return err
		}
		if err = acct.Deposit(amount); err != nil {
			return err
		}
		tx, err = transaction.NewDeposit(acct.ID(), amount, cmd.Description)
		if err != nil {
			return err
		}
		if err = tx.MarkCompleted(); err != nil {
			return err
		}
		if err = accounts.Update(ctx, acct); err != nil {
			return err
		}
		return txs.Create(ctx, tx)
	})
	if err != nil {
		logger.Error("deposit failed", "error", err)
		return nil, err
	}
	logger.Info("deposit completed", "transactionID", tx.ID(), "amount", tx.Amount())
	return tx, nil
}

// Withdraw removes funds from an account. On a domain failure the
// transaction is marked Failed with the captured reason and persisted, then
// the original error is returned to the caller.
func (s *Service) Withdraw(ctx context.Context, cmd MovementCommand) (tx *transaction.Transaction, err error) {
	logger := s.logger.With("operation", "Withdraw", "accountID", cmd.AccountID)
	var domErr error
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.Get(ctx, cmd.AccountID)
		if err != nil {
			return err
		}
		amount, err := money.New(cmd.Amount, currency.Code(cmd.Currency))
		if err != nil {
			return err
		}
		tx, err = transaction.NewWithdrawal(acct.ID(), amount, cmd.Description)
		if err != nil {
			return err
		}
		if withdrawErr := acct.Withdraw(amount); withdrawErr != nil {
			// Keep the failed attempt on record, then re-signal. Returning
			// nil commits the Failed transaction row.
			domErr = withdrawErr
			if err = tx.MarkFailed(withdrawErr.Error()); err != nil {
				return err
			}
			return txs.Create(ctx, tx)
		}
		if err = tx.MarkCompleted(); err != nil {
			return err
		}
		if err = accounts.Update(ctx, acct); err != nil {
			return err
		}
		return txs.Create(ctx, tx)
	})
	if err != nil {
		logger.Error("withdraw failed", "error", err)
		return nil, err
	}
	if domErr != nil {
		logger.Error("withdraw rejected", "error", domErr, "transactionID", tx.ID())
		return nil, domErr
	}
	logger.Info("withdraw completed", "transactionID", tx.ID(), "amount", tx.Amount())
	return tx, nil
}

// TransferCommand carries the input for Transfer.
type TransferCommand struct {
	SourceAccountID uuid.UUID
	TargetAccountID uuid.UUID
	Amount          decimal.Decimal
	Currency        string
	Description     string
}

// TransferResult reports the outcome of a transfer. Missing accounts and
// domain failures surface here as Success=false with a message; only
// storage and input-shape errors are returned as errors.
type TransferResult struct {
	Success         bool
	Message         string
	ReferenceNumber string
	Transaction     *transaction.Transaction
}

// Transfer moves funds between two accounts. On success both account writes
// and the Completed transaction commit atomically in one unit of work.
func (s *Service) Transfer(ctx context.Context, cmd TransferCommand) (result *TransferResult, err error) {
	logger := s.logger.With(
		"operation", "Transfer",
		"sourceAccountID", cmd.SourceAccountID,
		"targetAccountID", cmd.TargetAccountID,
	)
	result = &TransferResult{}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		source, err := accounts.Get(ctx, cmd.SourceAccountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				result.Message = "source account not found"
				return nil
			}
			return err
		}
		target, err := accounts.Get(ctx, cmd.TargetAccountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				result.Message = "target account not found"
				return nil
			}
			return err
		}
		amount, err := money.New(cmd.Amount, currency.Code(cmd.Currency))
		if err != nil {
			return err
		}
		tx, err := transaction.NewTransfer(source.ID(), target.ID(), amount, cmd.Description, s.refs)
		if err != nil {
			return err
		}
		result.Transaction = tx
		if transferErr := source.TransferTo(target, amount); transferErr != nil {
			result.Message = transferErr.Error()
			if err = tx.MarkFailed(transferErr.Error()); err != nil {
				return err
			}
			return txs.Create(ctx, tx)
		}
		if err = tx.MarkCompleted(); err != nil {
			return err
		}
		if err = accounts.Update(ctx, source); err != nil {
			return err
		}
		if err = accounts.Update(ctx, target); err != nil {
			return err
		}
		if err = txs.Create(ctx, tx); err != nil {
			return err
		}
		result.Success = true
		result.ReferenceNumber = tx.Reference()
		return nil
	})
	if err != nil {
		logger.Error("transfer failed", "error", err)
		return nil, err
	}
	if !result.Success {
		logger.Warn("transfer rejected", "message", result.Message)
		return result, nil
	}
	logger.Info("transfer completed", "reference", result.ReferenceNumber)
	return result, nil
}
