package account

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/account"
)

// mapError translates gorm errors into domain errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return account.ErrAccountNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate account record", domain.ErrValidation)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}
