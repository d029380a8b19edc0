package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renomester/internal/model"
)

// FileRepository defines file record persistence operations.
type FileRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]model.AppFile, error)
	FindByID(ctx context.Context, id string) (*model.AppFile, error)
	Upsert(ctx context.Context, file *model.AppFile) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository builds a GORM-backed repository.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) ListByProject(ctx context.Context, projectID string) ([]model.AppFile, error) {
	var files []model.AppFile
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) FindByID(ctx context.Context, id string) (*model.AppFile, error) {
	var file model.AppFile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// Upsert replaces the row matching the id, else appends a new one.
func (r *fileRepository) Upsert(ctx context.Context, file *model.AppFile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(file).Error
}

// DeleteByID is idempotent; deleting a missing id is a no-op.
func (r *fileRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AppFile{}).Error
}

// DeleteByProject removes all file records of a project.
func (r *fileRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.AppFile{}).Error
}
