// Package currency keeps a small registry of supported currency codes and
// their metadata. The ledger is single-currency in practice (IRR), but all
// money carries an explicit code so mismatches fail instead of mixing units.
package currency

import (
	"fmt"
	"sync"

	"github.com/novinbank/ledger/pkg/domain"
)

const (
	// DefaultCurrency is the fallback currency code.
	DefaultCurrency = "IRR"
	// DefaultDecimals is the number of decimal places used when a currency
	// has no registered metadata.
	DefaultDecimals = 2
)

// Code is an ISO 4217 style currency code.
type Code string

// IRR is the default ledger currency.
const IRR Code = "IRR"

// Meta holds currency-specific metadata.
type Meta struct {
	Decimals int
	Symbol   string
}

var (
	mu       sync.RWMutex
	registry = map[Code]Meta{
		"IRR": {Decimals: 2, Symbol: "﷼"},
		"USD": {Decimals: 2, Symbol: "$"},
		"EUR": {Decimals: 2, Symbol: "€"},
		"AED": {Decimals: 2, Symbol: "د.إ"},
		"TRY": {Decimals: 2, Symbol: "₺"},
	}
)

// Register adds or updates a currency in the registry.
func Register(code Code, meta Meta) {
	mu.Lock()
	defer mu.Unlock()
	registry[code] = meta
}

// Get returns the metadata for a registered currency code.
func Get(code Code) (Meta, error) {
	mu.RLock()
	defer mu.RUnlock()
	meta, ok := registry[code]
	if !ok {
		return Meta{}, fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, code)
	}
	return meta, nil
}

// IsSupported reports whether a currency code is registered.
func IsSupported(code Code) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[code]
	return ok
}

// IsValidFormat reports whether the code looks like an ISO 4217 code:
// exactly three uppercase ASCII letters.
func IsValidFormat(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
