// Package account provides the Account aggregate root: a customer-owned
// Money balance with deposit, withdrawal, transfer, and status transitions.
//
// Invariants:
//   - An account always references an owning customer id.
//   - The balance is a Money value object and can never go negative.
//   - Deposits and withdrawals require an Active account.
//   - An account may only close with a zero balance; Closed is terminal.
package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/money"
)

var (
	// ErrCustomerIDRequired is returned when building an account without an owner.
	ErrCustomerIDRequired = fmt.Errorf("%w: customer id is required", domain.ErrValidation)
	// ErrAccountNumberRequired is returned when the account number is blank.
	ErrAccountNumberRequired = fmt.Errorf("%w: account number is required", domain.ErrValidation)
	// ErrIBANRequired is returned when the IBAN is blank.
	ErrIBANRequired = fmt.Errorf("%w: IBAN is required", domain.ErrValidation)
	// ErrZeroAmount rejects zero-amount deposits and withdrawals. Negative
	// amounts cannot be represented by Money, so this guards zero specifically.
	ErrZeroAmount = fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	// ErrAccountNotActive is returned when a deposit or withdrawal targets a
	// frozen or closed account.
	ErrAccountNotActive = fmt.Errorf("%w: account is not active", domain.ErrValidation)
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", domain.ErrNotFound)
	// ErrCloseNonZeroBalance is returned when closing an account that still
	// holds funds.
	ErrCloseNonZeroBalance = fmt.Errorf("%w: account balance must be zero to close", domain.ErrValidation)
	// ErrAccountClosed is returned on any status transition out of Closed.
	ErrAccountClosed = fmt.Errorf("%w: account is closed", domain.ErrValidation)
	// ErrNotFrozen is returned when unfreezing an account that is not frozen.
	ErrNotFrozen = fmt.Errorf("%w: account is not frozen", domain.ErrValidation)
	// ErrNilAccount is returned when a transfer is attempted against a nil
	// target account.
	ErrNilAccount = fmt.Errorf("%w: nil account", domain.ErrValidation)
)

// Type is the account product type.
type Type string

const (
	TypeCurrent Type = "current"
	TypeSavings Type = "savings"
	TypeDeposit Type = "deposit"
)

// ParseType maps an account-type string to a Type. Unrecognized strings
// default to TypeCurrent rather than failing.
func ParseType(s string) Type {
	switch Type(s) {
	case TypeSavings:
		return TypeSavings
	case TypeDeposit:
		return TypeDeposit
	default:
		return TypeCurrent
	}
}

// Status is the account lifecycle status.
type Status string

const (
	StatusActive Status = "active"
	StatusFrozen Status = "frozen"
	StatusClosed Status = "closed"
)

// Account is an aggregate root owning a Money balance.
type Account struct {
	id         uuid.UUID
	customerID uuid.UUID
	number     string
	iban       string
	balance    money.Money
	accType    Type
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// Builder provides a fluent API for constructing Account instances. Build
// validates all invariants before returning the account.
type Builder struct {
	id         uuid.UUID
	customerID uuid.UUID
	number     string
	iban       string
	balance    money.Money
	accType    Type
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// New creates a Builder with a fresh id, Active status, a zero IRR balance,
// and the current type defaulted.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		balance:   money.Zero(currency.DefaultCurrency),
		accType:   TypeCurrent,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the account id. For hydration from a data store.
func (b *Builder) WithID(id uuid.UUID) *Builder { b.id = id; return b }

// WithCustomerID sets the owning customer id. Mandatory.
func (b *Builder) WithCustomerID(id uuid.UUID) *Builder { b.customerID = id; return b }

// WithNumber sets the account number. Mandatory.
func (b *Builder) WithNumber(n string) *Builder { b.number = n; return b }

// WithIBAN sets the IBAN identifier. Mandatory. The IBAN is stored opaque,
// validated only for non-blankness.
func (b *Builder) WithIBAN(iban string) *Builder { b.iban = iban; return b }

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(bal money.Money) *Builder { b.balance = bal; return b }

// WithType sets the account product type.
func (b *Builder) WithType(t Type) *Builder { b.accType = t; return b }

// WithStatus sets the status. For hydration from a data store.
func (b *Builder) WithStatus(s Status) *Builder { b.status = s; return b }

// WithCreatedAt sets the creation timestamp. For hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder { b.createdAt = t; return b }

// WithUpdatedAt sets the last-updated timestamp. For hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder { b.updatedAt = t; return b }

// Build validates the invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.customerID == uuid.Nil {
		return nil, ErrCustomerIDRequired
	}
	if b.number == "" {
		return nil, ErrAccountNumberRequired
	}
	if b.iban == "" {
		return nil, ErrIBANRequired
	}
	return &Account{
		id:         b.id,
		customerID: b.customerID,
		number:     b.number,
		iban:       b.iban,
		balance:    b.balance,
		accType:    b.accType,
		status:     b.status,
		createdAt:  b.createdAt,
		updatedAt:  b.updatedAt,
	}, nil
}

// Deposit adds the amount to the balance.
// Fails on zero amounts, non-Active accounts, and currency mismatch.
func (a *Account) Deposit(amount money.Money) error {
	if amount.IsZero() {
		return ErrZeroAmount
	}
	if a.status != StatusActive {
		return ErrAccountNotActive
	}
	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = newBalance
	a.updatedAt = time.Now().UTC()
	return nil
}

// Withdraw subtracts the amount from the balance. Fails on zero amounts,
// non-Active accounts, currency mismatch, and insufficient funds; the
// balance is unchanged on failure.
func (a *Account) Withdraw(amount money.Money) error {
	if amount.IsZero() {
		return ErrZeroAmount
	}
	if a.status != StatusActive {
		return ErrAccountNotActive
	}
	newBalance, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.balance = newBalance
	a.updatedAt = time.Now().UTC()
	return nil
}

// TransferTo withdraws from this account then deposits into target. The
// deposit never runs when the withdrawal fails; when the deposit fails after
// a successful withdrawal, the withdrawn amount is restored so both balances
// are left unchanged.
func (a *Account) TransferTo(target *Account, amount money.Money) error {
	if target == nil {
		return ErrNilAccount
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	if err := target.Deposit(amount); err != nil {
		// Put the withdrawn amount back; Add cannot fail here since the
		// withdrawal just succeeded with the same currency.
		restored, _ := a.balance.Add(amount)
		a.balance = restored
		return err
	}
	return nil
}

// Freeze moves an Active account to Frozen.
func (a *Account) Freeze() error {
	if a.status == StatusClosed {
		return ErrAccountClosed
	}
	a.status = StatusFrozen
	a.updatedAt = time.Now().UTC()
	return nil
}

// Unfreeze moves a Frozen account back to Active.
func (a *Account) Unfreeze() error {
	if a.status == StatusClosed {
		return ErrAccountClosed
	}
	if a.status != StatusFrozen {
		return ErrNotFrozen
	}
	a.status = StatusActive
	a.updatedAt = time.Now().UTC()
	return nil
}

// Close moves the account to Closed. Only a zero-balance account may close;
// Closed is terminal.
func (a *Account) Close() error {
	if a.status == StatusClosed {
		return ErrAccountClosed
	}
	if !a.balance.IsZero() {
		return ErrCloseNonZeroBalance
	}
	a.status = StatusClosed
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Account) ID() uuid.UUID           { return a.id }
func (a *Account) CustomerID() uuid.UUID   { return a.customerID }
func (a *Account) Number() string          { return a.number }
func (a *Account) IBAN() string            { return a.iban }
func (a *Account) Balance() money.Money    { return a.balance }
func (a *Account) Type() Type              { return a.accType }
func (a *Account) Status() Status          { return a.status }
func (a *Account) IsActive() bool          { return a.status == StatusActive }
func (a *Account) Currency() currency.Code { return a.balance.Currency() }
func (a *Account) CreatedAt() time.Time    { return a.createdAt }
func (a *Account) UpdatedAt() time.Time    { return a.updatedAt }
