package identity

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/novinbank/ledger/pkg/domain"
)

var (
	// ErrEmailEmpty is returned when the raw input is blank after trimming.
	ErrEmailEmpty = fmt.Errorf("%w: email address is empty", domain.ErrValidation)
	// ErrEmailMalformed is returned when the input does not parse as a
	// single email address.
	ErrEmailMalformed = fmt.Errorf("%w: email address is malformed", domain.ErrValidation)
)

// EmailAddress is a validated, normalized (trimmed, lowercase) email address.
type EmailAddress struct {
	value string
}

// NewEmailAddress trims and lowercases the raw input, then requires it to
// parse as a single syntactically valid address.
func NewEmailAddress(raw string) (EmailAddress, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return EmailAddress{}, ErrEmailEmpty
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return EmailAddress{}, ErrEmailMalformed
	}
	return EmailAddress{value: normalized}, nil
}

// String returns the normalized address.
func (e EmailAddress) String() string { return e.value }
