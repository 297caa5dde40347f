// Package transaction implements the transaction store on gorm.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novinbank/ledger/pkg/domain/transaction"
	"github.com/novinbank/ledger/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.TransactionRepository {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return toDomain(&m), nil
}

func (r *repo) GetByReference(ctx context.Context, reference string) (*transaction.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).First(&m, "reference = ?", reference).Error; err != nil {
		return nil, mapError(err)
	}
	return toDomain(&m), nil
}

// ListByAccount returns transactions touching the account as source or
// target, newest first. A limit of zero or less means no limit.
func (r *repo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*transaction.Transaction, error) {
	q := r.db.WithContext(ctx).
		Where("source_id = ? OR target_id = ?", accountID, accountID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.list(q)
}

func (r *repo) ListBySourceAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error) {
	return r.list(r.db.WithContext(ctx).Where("source_id = ?", accountID).Order("created_at DESC"))
}

func (r *repo) ListByTargetAccount(ctx context.Context, accountID uuid.UUID) ([]*transaction.Transaction, error) {
	return r.list(r.db.WithContext(ctx).Where("target_id = ?", accountID).Order("created_at DESC"))
}

func (r *repo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*transaction.Transaction, error) {
	return r.list(r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at DESC"))
}

func (r *repo) list(q *gorm.DB) ([]*transaction.Transaction, error) {
	var ms []Transaction
	if err := q.Find(&ms).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]*transaction.Transaction, 0, len(ms))
	for i := range ms {
		out = append(out, toDomain(&ms[i]))
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, t *transaction.Transaction) error {
	m := toModel(t)
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *repo) Update(ctx context.Context, t *transaction.Transaction) error {
	m := toModel(t)
	return mapError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}
