package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/money"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func accountRows(id, customerID uuid.UUID) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "customer_id", "number", "iban", "balance", "currency",
		"type", "status", "created_at", "updated_at",
	}).AddRow(id, customerID, "1234567812345678", "IR123456789012345678901234",
		"2500.00", "IRR", "current", "active", now, now)
}

func TestAccountRepository_Get(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	id := uuid.New()
	customerID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 (.+)`).
		WithArgs(id, 1).
		WillReturnRows(accountRows(id, customerID))

	got, err := repo.Get(context.Background(), id)
	require.NoError(err)
	assert.Equal(id, got.ID())
	assert.Equal(customerID, got.CustomerID())
	assert.Equal(currency.IRR, got.Currency())
	assert.True(got.Balance().Amount().Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(account.StatusActive, got.Status())
}

func TestAccountRepository_GetNotFound(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE number = \$1 (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByNumber(context.Background(), "1234567812345678")
	require.Error(err)
	require.ErrorIs(err, account.ErrAccountNotFound)
	require.ErrorIs(err, domain.ErrNotFound)
}

func TestAccountRepository_Update(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	bal := money.NewFromData(decimal.NewFromInt(1000), currency.IRR)
	a, err := account.New().
		WithCustomerID(uuid.New()).
		WithNumber("1234567812345678").
		WithIBAN("IR123456789012345678901234").
		WithBalance(bal).
		Build()
	require.NoError(err)

	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE "id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(repo.Update(context.Background(), a))

	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE "id" = \$\d+`).
		WillReturnError(errors.New("update error"))
	err = repo.Update(context.Background(), a)
	require.Error(err)
	require.ErrorIs(err, domain.ErrStorage)
}

func TestAccountRepository_ListByCustomer(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	customerID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE customer_id = \$1`).
		WithArgs(customerID).
		WillReturnRows(accountRows(uuid.New(), customerID))

	got, err := repo.ListByCustomer(context.Background(), customerID)
	require.NoError(err)
	require.Len(got, 1)
	require.Equal(customerID, got[0].CustomerID())
}
