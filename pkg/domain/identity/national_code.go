// Package identity holds the self-validating value objects that guard entry
// into the system: national identity code, email address, and phone number.
// Each exposes a single fallible constructor performing normalization then
// validation; instances never mutate after construction.
package identity

import (
	"fmt"
	"strings"

	"github.com/novinbank/ledger/pkg/domain"
)

var (
	// ErrNationalCodeEmpty is returned when the raw input holds no digits.
	ErrNationalCodeEmpty = fmt.Errorf("%w: national identity code is empty", domain.ErrValidation)
	// ErrNationalCodeLength is returned when the input is not exactly 10 digits.
	ErrNationalCodeLength = fmt.Errorf("%w: national identity code must be 10 digits", domain.ErrValidation)
	// ErrNationalCodeRepeated rejects codes made of one repeated digit.
	ErrNationalCodeRepeated = fmt.Errorf("%w: national identity code digits cannot all be identical", domain.ErrValidation)
	// ErrNationalCodeChecksum is returned when the control digit does not
	// match the weighted checksum.
	ErrNationalCodeChecksum = fmt.Errorf("%w: national identity code checksum is invalid", domain.ErrValidation)
)

// NationalIDCode is a validated 10-digit national identity code.
type NationalIDCode struct {
	value string
}

// NewNationalIDCode normalizes the raw input to its digits and validates it.
// Rules: exactly 10 digits, not all identical, and the last digit must match
// the weighted checksum (weights 10 down to 2 over the first 9 digits, sum
// mod 11; remainder < 2 means the control digit equals the remainder,
// otherwise it equals 11 minus the remainder).
func NewNationalIDCode(raw string) (NationalIDCode, error) {
	code := digitsOf(raw)
	if code == "" {
		return NationalIDCode{}, ErrNationalCodeEmpty
	}
	if len(code) != 10 {
		return NationalIDCode{}, ErrNationalCodeLength
	}
	if strings.Count(code, code[:1]) == len(code) {
		return NationalIDCode{}, ErrNationalCodeRepeated
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(code[i]-'0') * (10 - i)
	}
	remainder := sum % 11
	control := int(code[9] - '0')
	if remainder < 2 {
		if control != remainder {
			return NationalIDCode{}, ErrNationalCodeChecksum
		}
	} else if control != 11-remainder {
		return NationalIDCode{}, ErrNationalCodeChecksum
	}

	return NationalIDCode{value: code}, nil
}

// String returns the normalized 10-digit code.
func (n NationalIDCode) String() string { return n.value }

// digitsOf strips everything but ASCII digits.
func digitsOf(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
