package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain/money"
	"github.com/novinbank/ledger/pkg/domain/transaction"
)

// Transaction is the database record for a transaction aggregate. Transfer
// rows carry a target account and a reference number; deposits and
// withdrawals leave both null.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SourceID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	TargetID    *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Type        string          `gorm:"type:varchar(16);not null"`
	Status      string          `gorm:"type:varchar(16);not null"`
	Description string
	Reference   *string `gorm:"type:varchar(32);uniqueIndex"`
	FailReason  *string
	CreatedAt   time.Time `gorm:"index"`
	CompletedAt *time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string { return "transactions" }

func toModel(t *transaction.Transaction) Transaction {
	m := Transaction{
		ID:          t.ID(),
		SourceID:    t.SourceID(),
		Amount:      t.Amount().Amount(),
		Currency:    string(t.Amount().Currency()),
		Type:        string(t.Type()),
		Status:      string(t.Status()),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
	if id := t.TargetID(); id != uuid.Nil {
		m.TargetID = &id
	}
	if ref := t.Reference(); ref != "" {
		m.Reference = &ref
	}
	if reason := t.FailReason(); reason != "" {
		m.FailReason = &reason
	}
	if done := t.CompletedAt(); !done.IsZero() {
		m.CompletedAt = &done
	}
	return m
}

func toDomain(m *Transaction) *transaction.Transaction {
	targetID := uuid.Nil
	if m.TargetID != nil {
		targetID = *m.TargetID
	}
	var reference, failReason string
	if m.Reference != nil {
		reference = *m.Reference
	}
	if m.FailReason != nil {
		failReason = *m.FailReason
	}
	var completedAt time.Time
	if m.CompletedAt != nil {
		completedAt = *m.CompletedAt
	}
	return transaction.NewFromData(
		m.ID,
		m.SourceID,
		targetID,
		money.NewFromData(m.Amount, currency.Code(m.Currency)),
		transaction.Type(m.Type),
		transaction.Status(m.Status),
		m.Description,
		reference,
		failReason,
		m.CreatedAt,
		completedAt,
	)
}
