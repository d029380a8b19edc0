package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"renomester/internal/cache"
	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
	"renomester/internal/storage"
)

const projectCacheTTL = 5 * time.Minute

// ProjectService handles project operations. Role checks live here, not at
// the HTTP call sites: create and delete are admin-only, edit requires the
// actor to be admin, creator or assignee.
type ProjectService interface {
	List(ctx context.Context, actor *model.User) ([]model.Project, error)
	Get(ctx context.Context, actor *model.User, id string) (*model.Project, error)
	Create(ctx context.Context, actor *model.User, project *model.Project) (*model.Project, error)
	Update(ctx context.Context, actor *model.User, project *model.Project) (*model.Project, error)
	Delete(ctx context.Context, actor *model.User, id string) error
}

type projectService struct {
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	materials repository.MaterialRepository
	costs     repository.CostRepository
	files     repository.FileRepository
	statuses  repository.StatusRepository
	disk      *storage.Disk
	cache     *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	materials repository.MaterialRepository,
	costs repository.CostRepository,
	files repository.FileRepository,
	statuses repository.StatusRepository,
	disk *storage.Disk,
	cache *cache.Client,
) ProjectService {
	return &projectService{
		projects:  projects,
		tasks:     tasks,
		materials: materials,
		costs:     costs,
		files:     files,
		statuses:  statuses,
		disk:      disk,
		cache:     cache,
	}
}

func (s *projectService) cacheKey(id string) string {
	return fmt.Sprintf("project:%s", id)
}

// List returns the projects the actor may see.
func (s *projectService) List(ctx context.Context, actor *model.User) ([]model.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return VisibleProjects(actor, projects), nil
}

// Get retrieves a project by ID with caching and a visibility check.
func (s *projectService) Get(ctx context.Context, actor *model.User, id string) (*model.Project, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			cached.Normalize()
			if !CanAccessProject(actor, &cached) {
				return nil, errors.ErrProjectAccessDenied
			}
			return &cached, nil
		}
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, projectCacheTTL)
	}

	if !CanAccessProject(actor, project) {
		return nil, errors.ErrProjectAccessDenied
	}
	return project, nil
}

// Create creates a project. Admin only; the creator is recorded once and is
// always in the assignment list.
func (s *projectService) Create(ctx context.Context, actor *model.User, project *model.Project) (*model.Project, error) {
	if !actor.IsAdmin() {
		return nil, errors.ErrAdminOnly
	}

	if project.Status == "" {
		project.Status = model.DefaultStatuses[0]
	}
	if err := s.checkStatus(ctx, project.Status); err != nil {
		return nil, err
	}

	project.Normalize()
	project.CreatedAt = time.Now()
	project.CreatedBy = actor.Name
	project.CreatedByID = actor.ID
	if !project.AssignedUsers.Contains(actor.ID) {
		project.AssignedUsers = append(project.AssignedUsers, actor.ID)
	}

	if err := s.projects.Upsert(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(project.ID))
	return project, nil
}

// Update replaces a project by id. Ownership fields of the stored record
// are preserved; a missing id falls through to the admin-only create path
// (upsert semantics).
func (s *projectService) Update(ctx context.Context, actor *model.User, project *model.Project) (*model.Project, error) {
	existing, err := s.projects.FindByID(ctx, project.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return s.Create(ctx, actor, project)
		}
		return nil, err
	}

	if !CanAccessProject(actor, existing) {
		return nil, errors.ErrProjectAccessDenied
	}

	if project.Status == "" {
		project.Status = existing.Status
	}
	if err := s.checkStatus(ctx, project.Status); err != nil {
		return nil, err
	}

	project.Normalize()
	// created_by_id is set at creation and never changes
	project.CreatedAt = existing.CreatedAt
	project.CreatedBy = existing.CreatedBy
	project.CreatedByID = existing.CreatedByID

	if err := s.projects.Upsert(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(project.ID))
	return project, nil
}

// Delete removes a project and cascades to its tasks, materials, costs and
// file records, including stored payloads. Admin only; deleting a missing
// id is a no-op.
func (s *projectService) Delete(ctx context.Context, actor *model.User, id string) error {
	if !actor.IsAdmin() {
		return errors.ErrAdminOnly
	}

	if _, err := s.projects.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	if files, err := s.files.ListByProject(ctx, id); err == nil && s.disk != nil {
		for i := range files {
			_ = s.disk.Delete(files[i].FilePath)
		}
	}
	if err := s.files.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("delete project files: %w", err)
	}
	if err := s.tasks.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}
	if err := s.materials.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("delete project materials: %w", err)
	}
	if err := s.costs.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("delete project costs: %w", err)
	}
	if err := s.projects.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *projectService) checkStatus(ctx context.Context, status string) error {
	ok, err := s.statuses.Exists(ctx, status)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrUnknownStatus
	}
	return nil
}
