package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// Move directions for task reordering.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// TaskService handles the tasks of a project, including the dense integer
// ordering that drives display sequence.
type TaskService interface {
	ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.Task, error)
	Create(ctx context.Context, actor *model.User, task *model.Task) (*model.Task, error)
	Update(ctx context.Context, actor *model.User, task *model.Task) (*model.Task, error)
	Move(ctx context.Context, actor *model.User, projectID string, index int, direction string) error
	Delete(ctx context.Context, actor *model.User, projectID, taskID string) error
}

type taskService struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository) TaskService {
	return &taskService{tasks: tasks, projects: projects}
}

// ListByProject returns the project's tasks sorted by order.
func (s *taskService) ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.Task, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// Create appends a task to the end of the project's sequence: its order is
// the current task count.
func (s *taskService) Create(ctx context.Context, actor *model.User, task *model.Task) (*model.Task, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, task.ProjectID); err != nil {
		return nil, err
	}

	if task.Status == "" {
		task.Status = model.TaskStatusOpen
	}
	if !model.ValidTaskStatus(task.Status) {
		return nil, errors.ErrInvalidTaskStatus
	}
	if task.StartDate == "" {
		task.StartDate = time.Now().Format("2006-01-02")
	}
	task.CreatedBy = actor.Name

	count, err := s.tasks.CountByProject(ctx, task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	task.Order = int(count)

	if err := s.tasks.Upsert(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update replaces a task by id, preserving its project, order and creator.
// A missing id falls through to the create path (upsert semantics).
func (s *taskService) Update(ctx context.Context, actor *model.User, task *model.Task) (*model.Task, error) {
	existing, err := s.tasks.FindByID(ctx, task.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return s.Create(ctx, actor, task)
		}
		return nil, err
	}

	if _, err := ensureProjectAccess(ctx, s.projects, actor, existing.ProjectID); err != nil {
		return nil, err
	}
	if task.Status == "" {
		task.Status = existing.Status
	}
	if !model.ValidTaskStatus(task.Status) {
		return nil, errors.ErrInvalidTaskStatus
	}

	task.ProjectID = existing.ProjectID
	task.Order = existing.Order
	task.CreatedBy = existing.CreatedBy
	if task.StartDate == "" {
		task.StartDate = existing.StartDate
	}

	if err := s.tasks.Upsert(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Move swaps the order values of the task at index with its neighbor in the
// given direction and persists exactly those two rows. A move at a boundary
// is a silent no-op. The multiset of order values is unchanged, so a dense
// sequence stays dense.
func (s *taskService) Move(ctx context.Context, actor *model.User, projectID string, index int, direction string) error {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	a, b := swapOrder(tasks, index, direction)
	if a == nil {
		return nil
	}

	if err := s.tasks.Upsert(ctx, a); err != nil {
		return fmt.Errorf("move task: %w", err)
	}
	if err := s.tasks.Upsert(ctx, b); err != nil {
		return fmt.Errorf("move task: %w", err)
	}
	return nil
}

// swapOrder trades the order values of tasks[index] and its neighbor,
// returning the two changed tasks, or nil for an out-of-range or boundary
// move. The caller must reload and resort afterwards; positions in the
// passed slice do not auto-resort.
func swapOrder(tasks []model.Task, index int, direction string) (*model.Task, *model.Task) {
	target := index + 1
	if direction == MoveUp {
		target = index - 1
	}
	if index < 0 || index >= len(tasks) || target < 0 || target >= len(tasks) {
		return nil, nil
	}
	tasks[index].Order, tasks[target].Order = tasks[target].Order, tasks[index].Order
	return &tasks[index], &tasks[target]
}

// Delete removes a task and renumbers the survivors to 0..N-1 so later
// appends cannot collide with a gap left by the deletion.
func (s *taskService) Delete(ctx context.Context, actor *model.User, projectID, taskID string) error {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return err
	}

	if err := s.tasks.DeleteByID(ctx, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	remaining, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for i := range remaining {
		if remaining[i].Order != i {
			remaining[i].Order = i
			if err := s.tasks.Upsert(ctx, &remaining[i]); err != nil {
				return fmt.Errorf("renumber task: %w", err)
			}
		}
	}
	return nil
}
