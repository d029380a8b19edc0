package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renomester/internal/model"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
	Upsert(ctx context.Context, project *model.Project) error
	DeleteByID(ctx context.Context, id string) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository builds a GORM-backed repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// List returns every project in stored order, normalized for legacy rows.
func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Normalize()
	}
	return projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	project.Normalize()
	return &project, nil
}

// Upsert replaces the row matching the id, else appends a new one.
func (r *projectRepository) Upsert(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(project).Error
}

// DeleteByID is idempotent; deleting a missing id is a no-op.
func (r *projectRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{}).Error
}
