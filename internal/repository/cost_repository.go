package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renomester/internal/model"
)

// CostRepository defines cost persistence operations.
type CostRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]model.Cost, error)
	FindByID(ctx context.Context, id string) (*model.Cost, error)
	Upsert(ctx context.Context, cost *model.Cost) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type costRepository struct {
	db *gorm.DB
}

// NewCostRepository builds a GORM-backed repository.
func NewCostRepository(db *gorm.DB) CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) ListByProject(ctx context.Context, projectID string) ([]model.Cost, error) {
	var costs []model.Cost
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}

func (r *costRepository) FindByID(ctx context.Context, id string) (*model.Cost, error) {
	var cost model.Cost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cost).Error; err != nil {
		return nil, err
	}
	return &cost, nil
}

// Upsert replaces the row matching the id, else appends a new one.
func (r *costRepository) Upsert(ctx context.Context, cost *model.Cost) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(cost).Error
}

// DeleteByID is idempotent; deleting a missing id is a no-op.
func (r *costRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Cost{}).Error
}

// DeleteByProject removes all costs of a project.
func (r *costRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.Cost{}).Error
}
