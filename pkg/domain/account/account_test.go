package account_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/domain/money"
)

func irr(t *testing.T, amount float64) money.Money {
	t.Helper()
	m, err := money.NewFromFloat(amount, currency.IRR)
	require.NoError(t, err)
	return m
}

func newAccount(t *testing.T, balance float64) *account.Account {
	t.Helper()
	acc, err := account.New().
		WithCustomerID(uuid.New()).
		WithNumber("6037991234567890").
		WithIBAN("IR062960000000100324200001").
		WithBalance(irr(t, balance)).
		Build()
	require.NoError(t, err)
	return acc
}

func TestBuild(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		acc := newAccount(t, 0)
		assert.Equal(t, account.StatusActive, acc.Status())
		assert.Equal(t, account.TypeCurrent, acc.Type())
		assert.True(t, acc.Balance().IsZero())
		assert.Equal(t, currency.IRR, acc.Currency())
	})

	t.Run("missing customer id", func(t *testing.T) {
		_, err := account.New().WithNumber("1").WithIBAN("IR1").Build()
		assert.ErrorIs(t, err, account.ErrCustomerIDRequired)
	})

	t.Run("missing account number", func(t *testing.T) {
		_, err := account.New().WithCustomerID(uuid.New()).WithIBAN("IR1").Build()
		assert.ErrorIs(t, err, account.ErrAccountNumberRequired)
	})

	t.Run("missing iban", func(t *testing.T) {
		_, err := account.New().WithCustomerID(uuid.New()).WithNumber("1").Build()
		assert.ErrorIs(t, err, account.ErrIBANRequired)
	})
}

func TestParseType(t *testing.T) {
	assert.Equal(t, account.TypeSavings, account.ParseType("savings"))
	assert.Equal(t, account.TypeDeposit, account.ParseType("deposit"))
	assert.Equal(t, account.TypeCurrent, account.ParseType("current"))
	// Unrecognized strings silently fall back to current.
	assert.Equal(t, account.TypeCurrent, account.ParseType("checking"))
	assert.Equal(t, account.TypeCurrent, account.ParseType(""))
}

func TestDeposit(t *testing.T) {
	t.Run("adds to balance", func(t *testing.T) {
		acc := newAccount(t, 1000)
		require.NoError(t, acc.Deposit(irr(t, 500)))
		assert.True(t, acc.Balance().Equals(irr(t, 1500)))
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		acc := newAccount(t, 1000)
		err := acc.Deposit(money.Zero(currency.IRR))
		assert.ErrorIs(t, err, account.ErrZeroAmount)
		assert.True(t, acc.Balance().Equals(irr(t, 1000)))
	})

	t.Run("frozen account rejected", func(t *testing.T) {
		acc := newAccount(t, 1000)
		require.NoError(t, acc.Freeze())
		err := acc.Deposit(irr(t, 500))
		assert.ErrorIs(t, err, account.ErrAccountNotActive)
	})

	t.Run("currency mismatch rejected", func(t *testing.T) {
		acc := newAccount(t, 1000)
		usd, err := money.NewFromFloat(10, "USD")
		require.NoError(t, err)
		err = acc.Deposit(usd)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("subtracts from balance", func(t *testing.T) {
		acc := newAccount(t, 1000)
		require.NoError(t, acc.Withdraw(irr(t, 300)))
		assert.True(t, acc.Balance().Equals(irr(t, 700)))
	})

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		acc := newAccount(t, 100)
		err := acc.Withdraw(irr(t, 200))
		assert.ErrorIs(t, err, money.ErrInsufficientFunds)
		assert.True(t, acc.Balance().Equals(irr(t, 100)))
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		acc := newAccount(t, 100)
		assert.ErrorIs(t, acc.Withdraw(money.Zero(currency.IRR)), account.ErrZeroAmount)
	})

	t.Run("frozen account rejected", func(t *testing.T) {
		acc := newAccount(t, 100)
		require.NoError(t, acc.Freeze())
		assert.ErrorIs(t, acc.Withdraw(irr(t, 50)), account.ErrAccountNotActive)
	})

	t.Run("withdraw entire balance", func(t *testing.T) {
		acc := newAccount(t, 100)
		require.NoError(t, acc.Withdraw(irr(t, 100)))
		assert.True(t, acc.Balance().IsZero())
	})
}

func TestTransferTo(t *testing.T) {
	t.Run("moves funds between accounts", func(t *testing.T) {
		src := newAccount(t, 1000)
		dst := newAccount(t, 500)
		require.NoError(t, src.TransferTo(dst, irr(t, 300)))
		assert.True(t, src.Balance().Equals(irr(t, 700)))
		assert.True(t, dst.Balance().Equals(irr(t, 800)))
	})

	t.Run("insufficient funds leaves both balances unchanged", func(t *testing.T) {
		src := newAccount(t, 100)
		dst := newAccount(t, 500)
		err := src.TransferTo(dst, irr(t, 300))
		assert.ErrorIs(t, err, money.ErrInsufficientFunds)
		assert.True(t, src.Balance().Equals(irr(t, 100)))
		assert.True(t, dst.Balance().Equals(irr(t, 500)))
	})

	t.Run("frozen target restores source balance", func(t *testing.T) {
		src := newAccount(t, 1000)
		dst := newAccount(t, 500)
		require.NoError(t, dst.Freeze())
		err := src.TransferTo(dst, irr(t, 300))
		assert.ErrorIs(t, err, account.ErrAccountNotActive)
		assert.True(t, src.Balance().Equals(irr(t, 1000)))
		assert.True(t, dst.Balance().Equals(irr(t, 500)))
	})

	t.Run("nil target rejected", func(t *testing.T) {
		src := newAccount(t, 1000)
		assert.ErrorIs(t, src.TransferTo(nil, irr(t, 300)), account.ErrNilAccount)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("freeze and unfreeze", func(t *testing.T) {
		acc := newAccount(t, 100)
		require.NoError(t, acc.Freeze())
		assert.Equal(t, account.StatusFrozen, acc.Status())
		require.NoError(t, acc.Unfreeze())
		assert.Equal(t, account.StatusActive, acc.Status())
	})

	t.Run("unfreeze requires frozen", func(t *testing.T) {
		acc := newAccount(t, 100)
		assert.ErrorIs(t, acc.Unfreeze(), account.ErrNotFrozen)
	})

	t.Run("close with zero balance", func(t *testing.T) {
		acc := newAccount(t, 0)
		require.NoError(t, acc.Close())
		assert.Equal(t, account.StatusClosed, acc.Status())
	})

	t.Run("close with funds rejected", func(t *testing.T) {
		acc := newAccount(t, 100)
		assert.ErrorIs(t, acc.Close(), account.ErrCloseNonZeroBalance)
		assert.Equal(t, account.StatusActive, acc.Status())
	})

	t.Run("frozen account may close", func(t *testing.T) {
		acc := newAccount(t, 0)
		require.NoError(t, acc.Freeze())
		require.NoError(t, acc.Close())
		assert.Equal(t, account.StatusClosed, acc.Status())
	})

	t.Run("closed is terminal", func(t *testing.T) {
		acc := newAccount(t, 0)
		require.NoError(t, acc.Close())
		assert.ErrorIs(t, acc.Freeze(), account.ErrAccountClosed)
		assert.ErrorIs(t, acc.Unfreeze(), account.ErrAccountClosed)
		assert.ErrorIs(t, acc.Close(), account.ErrAccountClosed)
		assert.ErrorIs(t, acc.Deposit(irr(t, 1)), account.ErrAccountNotActive)
	})
}
