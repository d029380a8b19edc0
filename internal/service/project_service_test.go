package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"renomester/internal/errors"
	"renomester/internal/model"
)

type projectServiceMocks struct {
	projects  *MockProjectRepository
	tasks     *MockTaskRepository
	materials *MockMaterialRepository
	costs     *MockCostRepository
	files     *MockFileRepository
	statuses  *MockStatusRepository
}

func newProjectService() (ProjectService, *projectServiceMocks) {
	m := &projectServiceMocks{
		projects:  new(MockProjectRepository),
		tasks:     new(MockTaskRepository),
		materials: new(MockMaterialRepository),
		costs:     new(MockCostRepository),
		files:     new(MockFileRepository),
		statuses:  new(MockStatusRepository),
	}
	svc := NewProjectService(m.projects, m.tasks, m.materials, m.costs, m.files, m.statuses, nil, nil)
	return svc, m
}

func TestProjectService_Create(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		svc, _ := newProjectService()
		_, err := svc.Create(context.Background(), regular(), &model.Project{Name: "Tetőfelújítás"})
		assert.Equal(t, errors.ErrAdminOnly, err)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, m := newProjectService()
		m.statuses.On("Exists", mock.Anything, "nem-letezik").Return(false, nil)

		_, err := svc.Create(context.Background(), admin(), &model.Project{Name: "Tetőfelújítás", Status: "nem-letezik"})
		assert.Equal(t, errors.ErrUnknownStatus, err)
	})

	t.Run("records creator and defaults status", func(t *testing.T) {
		svc, m := newProjectService()
		m.statuses.On("Exists", mock.Anything, "felmeres").Return(true, nil)
		m.projects.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		created, err := svc.Create(context.Background(), admin(), &model.Project{Name: "Tetőfelújítás"})
		assert.NoError(t, err)
		assert.Equal(t, "felmeres", created.Status)
		assert.Equal(t, "u1", created.CreatedByID)
		assert.Equal(t, "Kovács Admin János", created.CreatedBy)
		assert.True(t, created.AssignedUsers.Contains("u1"))
	})
}

func TestProjectService_Update(t *testing.T) {
	t.Run("preserves ownership fields", func(t *testing.T) {
		svc, m := newProjectService()
		existing := &model.Project{
			ID:            "p1",
			Name:          "Régi név",
			Status:        "felmeres",
			CreatedBy:     "Kovács Admin János",
			CreatedByID:   "u1",
			AssignedUsers: model.StringList{"u1", "u2"},
		}
		m.projects.On("FindByID", mock.Anything, "p1").Return(existing, nil)
		m.statuses.On("Exists", mock.Anything, "kivitelezes").Return(true, nil)
		m.projects.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		// the assignee edits the project and tries to claim ownership
		updated, err := svc.Update(context.Background(), regular(), &model.Project{
			ID:          "p1",
			Name:        "Új név",
			Status:      "kivitelezes",
			CreatedByID: "u2",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Új név", updated.Name)
		assert.Equal(t, "u1", updated.CreatedByID)
		assert.Equal(t, "Kovács Admin János", updated.CreatedBy)
	})

	t.Run("denied for non-member", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "p1").Return(&model.Project{ID: "p1", CreatedByID: "u1"}, nil)

		_, err := svc.Update(context.Background(), regular(), &model.Project{ID: "p1", Name: "X"})
		assert.Equal(t, errors.ErrProjectAccessDenied, err)
	})

	t.Run("missing id falls through to create", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "p-new").Return(nil, gorm.ErrRecordNotFound)
		m.statuses.On("Exists", mock.Anything, "felmeres").Return(true, nil)
		m.projects.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		created, err := svc.Update(context.Background(), admin(), &model.Project{ID: "p-new", Name: "Új projekt"})
		assert.NoError(t, err)
		assert.Equal(t, "u1", created.CreatedByID)
	})
}

func TestProjectService_Delete(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		svc, _ := newProjectService()
		err := svc.Delete(context.Background(), regular(), "p1")
		assert.Equal(t, errors.ErrAdminOnly, err)
	})

	t.Run("missing project is a no-op", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(context.Background(), admin(), "gone")
		assert.NoError(t, err)
		m.projects.AssertNotCalled(t, "DeleteByID", mock.Anything, "gone")
	})

	t.Run("cascades to all child kinds", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "p1").Return(&model.Project{ID: "p1", CreatedByID: "u1"}, nil)
		m.files.On("ListByProject", mock.Anything, "p1").Return([]model.AppFile{}, nil)
		m.files.On("DeleteByProject", mock.Anything, "p1").Return(nil)
		m.tasks.On("DeleteByProject", mock.Anything, "p1").Return(nil)
		m.materials.On("DeleteByProject", mock.Anything, "p1").Return(nil)
		m.costs.On("DeleteByProject", mock.Anything, "p1").Return(nil)
		m.projects.On("DeleteByID", mock.Anything, "p1").Return(nil)

		err := svc.Delete(context.Background(), admin(), "p1")
		assert.NoError(t, err)
		m.files.AssertExpectations(t)
		m.tasks.AssertExpectations(t)
		m.materials.AssertExpectations(t)
		m.costs.AssertExpectations(t)
		m.projects.AssertExpectations(t)
	})
}

func TestProjectService_Get(t *testing.T) {
	t.Run("denied for non-member", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "p1").Return(&model.Project{ID: "p1", CreatedByID: "u1"}, nil)

		_, err := svc.Get(context.Background(), regular(), "p1")
		assert.Equal(t, errors.ErrProjectAccessDenied, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Get(context.Background(), admin(), "gone")
		assert.Equal(t, errors.ErrProjectNotFound, err)
	})

	t.Run("member reads project", func(t *testing.T) {
		svc, m := newProjectService()
		m.projects.On("FindByID", mock.Anything, "p1").Return(&model.Project{
			ID: "p1", CreatedByID: "u1", AssignedUsers: model.StringList{"u2"},
		}, nil)

		project, err := svc.Get(context.Background(), regular(), "p1")
		assert.NoError(t, err)
		assert.Equal(t, "p1", project.ID)
	})
}
