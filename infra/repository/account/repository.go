// Package account implements the account store on gorm.
package account

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novinbank/ledger/pkg/domain/account"
	"github.com/novinbank/ledger/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.AccountRepository {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *repo) GetByNumber(ctx context.Context, number string) (*account.Account, error) {
	return r.getBy(ctx, "number = ?", number)
}

func (r *repo) GetByIBAN(ctx context.Context, iban string) (*account.Account, error) {
	return r.getBy(ctx, "iban = ?", iban)
}

func (r *repo) getBy(ctx context.Context, query string, arg any) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, query, arg).Error; err != nil {
		return nil, mapError(err)
	}
	return toDomain(&m)
}

func (r *repo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*account.Account, error) {
	var ms []Account
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&ms).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]*account.Account, 0, len(ms))
	for i := range ms {
		a, err := toDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, a *account.Account) error {
	m := toModel(a)
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *repo) Update(ctx context.Context, a *account.Account) error {
	m := toModel(a)
	return mapError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id).Error)
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.existsBy(ctx, "id = ?", id)
}

func (r *repo) NumberExists(ctx context.Context, number string) (bool, error) {
	return r.existsBy(ctx, "number = ?", number)
}

func (r *repo) existsBy(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Account{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}
