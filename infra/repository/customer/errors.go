package customer

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/novinbank/ledger/pkg/domain"
	"github.com/novinbank/ledger/pkg/domain/customer"
)

// mapError translates gorm errors into domain errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return customer.ErrCustomerNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate customer record", domain.ErrValidation)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}
