package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/money"
)

// Account is the database record for an account aggregate.
type Account struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Number     string          `gorm:"type:varchar(16);uniqueIndex;not null"`
	IBAN       string          `gorm:"type:varchar(26);uniqueIndex;not null"`
	Balance    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency   string          `gorm:"type:varchar(3);not null"`
	Type       string          `gorm:"type:varchar(16);not null"`
	Status     string          `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string { return "accounts" }

func toModel(a *account.Account) Account {
	return Account{
		ID:         a.ID(),
		CustomerID: a.CustomerID(),
		Number:     a.Number(),
		IBAN:       a.IBAN(),
		Balance:    a.Balance().Amount(),
		Currency:   string(a.Balance().Currency()),
		Type:       string(a.Type()),
		Status:     string(a.Status()),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func toDomain(m *Account) (*account.Account, error) {
	return account.New().
		WithID(m.ID).
		WithCustomerID(m.CustomerID).
		WithNumber(m.Number).
		WithIBAN(m.IBAN).
		WithBalance(money.NewFromData(m.Balance, currency.Code(m.Currency))).
		WithType(account.Type(m.Type)).
		WithStatus(account.Status(m.Status)).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}
