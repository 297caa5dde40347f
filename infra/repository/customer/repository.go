// Package customer implements the customer store on gorm.
package customer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novinbank/ledger/pkg/domain/customer"
	"github.com/novinbank/ledger/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a customer repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.CustomerRepository {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *repo) GetByNationalCode(ctx context.Context, code string) (*customer.Customer, error) {
	return r.getBy(ctx, "national_code = ?", code)
}

func (r *repo) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *repo) getBy(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var m Customer
	if err := r.db.WithContext(ctx).First(&m, query, arg).Error; err != nil {
		return nil, mapError(err)
	}
	return toDomain(&m), nil
}

func (r *repo) List(ctx context.Context) ([]*customer.Customer, error) {
	var ms []Customer
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]*customer.Customer, 0, len(ms))
	for i := range ms {
		out = append(out, toDomain(&ms[i]))
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, c *customer.Customer) error {
	m := toModel(c)
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *repo) Update(ctx context.Context, c *customer.Customer) error {
	m := toModel(c)
	return mapError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&Customer{}, "id = ?", id).Error)
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.existsBy(ctx, "id = ?", id)
}

func (r *repo) NationalCodeExists(ctx context.Context, code string) (bool, error) {
	return r.existsBy(ctx, "national_code = ?", code)
}

func (r *repo) existsBy(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Customer{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}
