package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renomester/internal/model"
)

// StatusRepository defines custom status registry operations. The registry
// is append-only: there is deliberately no delete.
type StatusRepository interface {
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, value string) (bool, error)
	Add(ctx context.Context, value string) error
	Count(ctx context.Context) (int64, error)
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository builds a GORM-backed repository.
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) List(ctx context.Context) ([]string, error) {
	var statuses []model.CustomStatus
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.Value)
	}
	return values, nil
}

func (r *statusRepository) Exists(ctx context.Context, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CustomStatus{}).
		Where("value = ?", value).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a status value; adding an existing value is a no-op.
func (r *statusRepository) Add(ctx context.Context, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CustomStatus{Value: value}).Error
}

func (r *statusRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CustomStatus{}).Count(&count).Error
	return count, err
}
