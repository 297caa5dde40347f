package identity

import (
	"fmt"
	"strings"

	"github.com/novinbank/ledger/pkg/domain"
)

var (
	// ErrPhoneEmpty is returned when the raw input holds no digits.
	ErrPhoneEmpty = fmt.Errorf("%w: phone number is empty", domain.ErrValidation)
	// ErrPhoneInvalid is returned when the digits form neither a valid
	// mobile number nor a valid landline number.
	ErrPhoneInvalid = fmt.Errorf("%w: phone number is invalid", domain.ErrValidation)
)

// PhoneNumber is a validated, digits-only phone number. Mobile numbers are
// 11 digits starting with "09"; landlines are 10 to 11 digits with an area
// code.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber strips the raw input to its digits and validates it.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	digits := digitsOf(raw)
	if digits == "" {
		return PhoneNumber{}, ErrPhoneEmpty
	}
	if strings.HasPrefix(digits, "09") {
		if len(digits) != 11 {
			return PhoneNumber{}, ErrPhoneInvalid
		}
	} else if len(digits) < 10 || len(digits) > 11 {
		return PhoneNumber{}, ErrPhoneInvalid
	}
	return PhoneNumber{value: digits}, nil
}

// IsMobile reports whether the number is a mobile number.
func (p PhoneNumber) IsMobile() bool { return strings.HasPrefix(p.value, "09") }

// String returns the normalized digits.
func (p PhoneNumber) String() string { return p.value }
