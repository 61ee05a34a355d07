package repository

import (
	"context"

	"github.com/johnzhangfit/verttracker/internal/model"
	"gorm.io/gorm"
)

// JumpRepo is an interface so services can be tested with a mock.
type JumpRepo interface {
	Create(ctx context.Context, record *model.JumpRecord) error
	// ListByUser returns the user's records in insertion order, optionally
	// filtered by variant ("" = all). Insertion order is what the
	// aggregation tie-break rules lean on.
	ListByUser(ctx context.Context, userID, variant string) ([]model.JumpRecord, error)
}

type jumpRepo struct {
	db *gorm.DB
}

// NewJumpRepo wraps a gorm handle.
func NewJumpRepo(db *gorm.DB) JumpRepo {
	return &jumpRepo{db: db}
}

func (r *jumpRepo) Create(ctx context.Context, record *model.JumpRecord) error {
	// WithContext so request timeouts reach the database layer.
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *jumpRepo) ListByUser(ctx context.Context, userID, variant string) ([]model.JumpRecord, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if variant != "" {
		q = q.Where("variant = ?", variant)
	}
	var records []model.JumpRecord
	if err := q.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
