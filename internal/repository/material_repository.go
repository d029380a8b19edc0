package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renomester/internal/model"
)

// MaterialRepository defines material persistence operations.
type MaterialRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]model.Material, error)
	FindByID(ctx context.Context, id string) (*model.Material, error)
	Upsert(ctx context.Context, material *model.Material) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository builds a GORM-backed repository.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) ListByProject(ctx context.Context, projectID string) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) FindByID(ctx context.Context, id string) (*model.Material, error) {
	var material model.Material
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

// Upsert replaces the row matching the id, else appends a new one.
func (r *materialRepository) Upsert(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(material).Error
}

// DeleteByID is idempotent; deleting a missing id is a no-op.
func (r *materialRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Material{}).Error
}

// DeleteByProject removes all materials of a project.
func (r *materialRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.Material{}).Error
}
