// Package money provides the Money value object used for every balance and
// transaction amount in the ledger.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/novinbank/ledger/pkg/currency"
	"github.com/novinbank/ledger/pkg/domain"
)

var (
	// ErrNegativeAmount is returned when constructing money with a negative
	// amount. No Money value may represent negative money.
	ErrNegativeAmount = fmt.Errorf("%w: amount cannot be negative", domain.ErrValidation)
	// ErrCurrencyMismatch is returned when arithmetic is attempted between
	// two Money values of different currencies.
	ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", domain.ErrValidation)
	// ErrInsufficientFunds is returned by Subtract when the other amount
	// exceeds this one.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", domain.ErrValidation)
	// ErrInvalidCurrency is returned when the currency code is empty or not
	// a valid ISO 4217 format.
	ErrInvalidCurrency = fmt.Errorf("%w: invalid currency code", domain.ErrValidation)
)

// decimalPlaces is the scale every amount is rounded to at construction.
const decimalPlaces = 2

// Money is an immutable amount in a specific currency.
// Invariants:
//   - The amount is never negative.
//   - The amount carries at most two decimal places.
//   - Arithmetic between two Money values requires matching currencies.
//
// The zero value is not a valid Money; construct through New or Zero.
type Money struct {
	amount   decimal.Decimal
	currency currency.Code
}

// New creates a Money value, rounding the amount to two decimal places.
// An empty currency code defaults to IRR.
func New(amount decimal.Decimal, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidFormat(string(code)) {
		return Money{}, ErrInvalidCurrency
	}
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount.Round(decimalPlaces), currency: code}, nil
}

// NewFromFloat creates a Money value from a float amount.
func NewFromFloat(amount float64, code currency.Code) (Money, error) {
	return New(decimal.NewFromFloat(amount), code)
}

// Zero returns a zero-amount Money in the given currency.
func Zero(code currency.Code) Money {
	if code == "" {
		code = currency.DefaultCurrency
	}
	return Money{amount: decimal.Zero, currency: code}
}

// NewFromData rebuilds a Money value from stored data without re-rounding.
// Only for repository hydration and test fixtures.
func NewFromData(amount decimal.Decimal, code currency.Code) Money {
	return Money{amount: amount, currency: code}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() currency.Code { return m.currency }

// Add returns a new Money with the summed amount.
// Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns a new Money with the difference. Fails when the
// currencies differ or when other exceeds this amount; the result can
// therefore never be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	if m.amount.LessThan(other.amount) {
		return Money{}, ErrInsufficientFunds
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsSameCurrency reports whether both values share a currency.
func (m Money) IsSameCurrency(other Money) bool { return m.currency == other.currency }

// Equals reports value equality: same currency and same amount.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount.Equal(other.amount)
}

// GreaterThan reports whether this amount exceeds the other.
// Fails when the currencies differ.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan reports whether this amount is below the other.
// Fails when the currencies differ.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount.LessThan(other.amount), nil
}

// String renders the amount with its currency code, e.g. "1500.00 IRR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(decimalPlaces), m.currency)
}
