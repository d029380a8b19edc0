package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"renomester/internal/model"
)

// TaskRepository defines task persistence operations.
type TaskRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]model.Task, error)
	CountByProject(ctx context.Context, projectID string) (int64, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Upsert(ctx context.Context, task *model.Task) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// ListByProject returns the project's tasks sorted by their order value.
func (r *taskRepository) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Upsert replaces the row matching the id, else appends a new one.
func (r *taskRepository) Upsert(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(task).Error
}

// DeleteByID is idempotent; deleting a missing id is a no-op.
func (r *taskRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{}).Error
}

// DeleteByProject removes all tasks of a project.
func (r *taskRepository) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.Task{}).Error
}
