// Package transaction provides the Transaction aggregate root, recording the
// intent and outcome of a money movement. A transaction starts Pending and
// takes exactly one terminal transition (Completed, Failed, or Cancelled);
// terminal states are absorbing.
package transaction

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/money"
)

var (
	// ErrZeroAmount is returned when creating a transaction with a zero amount.
	ErrZeroAmount = fmt.Errorf("%w: transaction amount must be greater than zero", domain.ErrValidation)
	// ErrSameAccount is returned when a transfer names the same account as
	// source and target.
	ErrSameAccount = fmt.Errorf("%w: cannot transfer to the same account", domain.ErrValidation)
	// ErrAlreadyFinal is returned for any transition out of a terminal state.
	ErrAlreadyFinal = fmt.Errorf("%w: transaction already in a terminal state", domain.ErrValidation)
	// ErrTransactionNotFound is returned when a transaction cannot be found.
	ErrTransactionNotFound = fmt.Errorf("%w: transaction not found", domain.ErrNotFound)
)

// Type is the kind of money movement a transaction records.
type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeTransfer   Type = "transfer"
)

// Status is the transaction lifecycle status.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// DefaultCancelReason is recorded when MarkCancelled is given no reason.
const DefaultCancelReason = "cancelled by user"

// Transaction is an aggregate root. It is immutable after reaching a
// terminal status.
type Transaction struct {
	id          uuid.UUID
	sourceID    uuid.UUID
	targetID    uuid.UUID // uuid.Nil except for transfers
	amount      money.Money
	txType      Type
	status      Status
	description string
	reference   string
	failReason  string
	createdAt   time.Time
	completedAt time.Time
}

// NewDeposit creates a pending deposit transaction.
func NewDeposit(accountID uuid.UUID, amount money.Money, description string) (*Transaction, error) {
	if amount.IsZero() {
		return nil, ErrZeroAmount
	}
	return newTransaction(accountID, uuid.Nil, amount, TypeDeposit, description, ""), nil
}

// NewWithdrawal creates a pending withdrawal transaction.
func NewWithdrawal(accountID uuid.UUID, amount money.Money, description string) (*Transaction, error) {
	if amount.IsZero() {
		return nil, ErrZeroAmount
	}
	return newTransaction(accountID, uuid.Nil, amount, TypeWithdrawal, description, ""), nil
}

// NewTransfer creates a pending transfer transaction between two distinct
// accounts and stamps it with a generated reference number.
func NewTransfer(sourceID, targetID uuid.UUID, amount money.Money, description string, refs *RefGenerator) (*Transaction, error) {
	if amount.IsZero() {
		return nil, ErrZeroAmount
	}
	if sourceID == targetID {
		return nil, ErrSameAccount
	}
	return newTransaction(sourceID, targetID, amount, TypeTransfer, description, refs.Next()), nil
}

func newTransaction(sourceID, targetID uuid.UUID, amount money.Money, t Type, description, reference string) *Transaction {
	return &Transaction{
		id:          uuid.New(),
		sourceID:    sourceID,
		targetID:    targetID,
		amount:      amount,
		txType:      t,
		status:      StatusPending,
		description: description,
		reference:   reference,
		createdAt:   time.Now().UTC(),
	}
}

// NewFromData rebuilds a Transaction from stored data. This bypasses
// invariants and should only be used for repository hydration or tests.
func NewFromData(
	id, sourceID, targetID uuid.UUID,
	amount money.Money,
	txType Type,
	status Status,
	description, reference, failReason string,
	createdAt, completedAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		sourceID:    sourceID,
		targetID:    targetID,
		amount:      amount,
		txType:      txType,
		status:      status,
		description: description,
		reference:   reference,
		failReason:  failReason,
		createdAt:   createdAt,
		completedAt: completedAt,
	}
}

// MarkCompleted moves a pending transaction to Completed.
func (t *Transaction) MarkCompleted() error {
	if t.IsFinal() {
		return ErrAlreadyFinal
	}
	t.status = StatusCompleted
	t.completedAt = time.Now().UTC()
	return nil
}

// MarkFailed moves a pending transaction to Failed, recording the reason.
func (t *Transaction) MarkFailed(reason string) error {
	if t.IsFinal() {
		return ErrAlreadyFinal
	}
	t.status = StatusFailed
	t.failReason = reason
	t.completedAt = time.Now().UTC()
	return nil
}

// MarkCancelled moves a pending transaction to Cancelled. An empty reason
// falls back to DefaultCancelReason.
func (t *Transaction) MarkCancelled(reason string) error {
	if t.IsFinal() {
		return ErrAlreadyFinal
	}
	if reason == "" {
		reason = DefaultCancelReason
	}
	t.status = StatusCancelled
	t.failReason = reason
	t.completedAt = time.Now().UTC()
	return nil
}

// IsFinal reports whether the transaction has reached a terminal status.
func (t *Transaction) IsFinal() bool {
	return t.status == StatusCompleted || t.status == StatusFailed || t.status == StatusCancelled
}

func (t *Transaction) ID() uuid.UUID          { return t.id }
func (t *Transaction) SourceID() uuid.UUID    { return t.sourceID }
func (t *Transaction) TargetID() uuid.UUID    { return t.targetID }
func (t *Transaction) Amount() money.Money    { return t.amount }
func (t *Transaction) Type() Type             { return t.txType }
func (t *Transaction) Status() Status         { return t.status }
func (t *Transaction) Description() string    { return t.description }
func (t *Transaction) Reference() string      { return t.reference }
func (t *Transaction) FailReason() string     { return t.failReason }
func (t *Transaction) CreatedAt() time.Time   { return t.createdAt }
func (t *Transaction) CompletedAt() time.Time { return t.completedAt }
