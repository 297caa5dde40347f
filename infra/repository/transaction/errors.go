package transaction

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/transaction"
)

// mapError translates gorm errors into domain errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return transaction.ErrTransactionNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate transaction record", domain.ErrValidation)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}
