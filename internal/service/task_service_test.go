package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"renomester/internal/model"
)

func accessibleProject(id string) *model.Project {
	return &model.Project{ID: id, CreatedByID: "u2", AssignedUsers: model.StringList{"u2"}}
}

func threeTasks() []model.Task {
	return []model.Task{
		{ID: "t0", ProjectID: "p1", Title: "Bontás", Order: 0},
		{ID: "t1", ProjectID: "p1", Title: "Villanyszerelés", Order: 1},
		{ID: "t2", ProjectID: "p1", Title: "Burkolás", Order: 2},
	}
}

func TestSwapOrder(t *testing.T) {
	t.Run("move middle task up", func(t *testing.T) {
		tasks := threeTasks()
		a, b := swapOrder(tasks, 1, MoveUp)

		assert.NotNil(t, a)
		assert.NotNil(t, b)
		assert.Equal(t, "t1", a.ID)
		assert.Equal(t, 0, a.Order)
		assert.Equal(t, "t0", b.ID)
		assert.Equal(t, 1, b.Order)
	})

	t.Run("move middle task down", func(t *testing.T) {
		tasks := threeTasks()
		a, b := swapOrder(tasks, 1, MoveDown)

		assert.Equal(t, 2, a.Order)
		assert.Equal(t, "t2", b.ID)
		assert.Equal(t, 1, b.Order)
	})

	t.Run("boundary moves are no-ops", func(t *testing.T) {
		tasks := threeTasks()
		a, b := swapOrder(tasks, 0, MoveUp)
		assert.Nil(t, a)
		assert.Nil(t, b)

		a, b = swapOrder(tasks, 2, MoveDown)
		assert.Nil(t, a)
		assert.Nil(t, b)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		tasks := threeTasks()
		a, _ := swapOrder(tasks, 7, MoveUp)
		assert.Nil(t, a)
		a, _ = swapOrder(tasks, -1, MoveDown)
		assert.Nil(t, a)
	})

	t.Run("multiset of order values is unchanged", func(t *testing.T) {
		tasks := threeTasks()
		swapOrder(tasks, 1, MoveUp)

		orders := []int{tasks[0].Order, tasks[1].Order, tasks[2].Order}
		sort.Ints(orders)
		assert.Equal(t, []int{0, 1, 2}, orders)
	})
}

func TestTaskService_Move(t *testing.T) {
	t.Run("persists exactly the two swapped rows", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)
		tasks.On("ListByProject", mock.Anything, "p1").Return(threeTasks(), nil)
		tasks.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(tasks, projects)
		err := svc.Move(context.Background(), regular(), "p1", 1, MoveUp)

		assert.NoError(t, err)
		tasks.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("boundary move writes nothing", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)
		tasks.On("ListByProject", mock.Anything, "p1").Return(threeTasks(), nil)

		svc := NewTaskService(tasks, projects)
		err := svc.Move(context.Background(), regular(), "p1", 0, MoveUp)

		assert.NoError(t, err)
		tasks.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Create(t *testing.T) {
	t.Run("appends at the end of the sequence", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)
		tasks.On("CountByProject", mock.Anything, "p1").Return(int64(3), nil)
		tasks.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(tasks, projects)
		created, err := svc.Create(context.Background(), regular(), &model.Task{ProjectID: "p1", Title: "Festés"})

		assert.NoError(t, err)
		assert.Equal(t, 3, created.Order)
		assert.Equal(t, model.TaskStatusOpen, created.Status)
		assert.Equal(t, "Szabó Péter", created.CreatedBy)
		assert.NotEmpty(t, created.StartDate)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)

		svc := NewTaskService(tasks, projects)
		_, err := svc.Create(context.Background(), regular(), &model.Task{ProjectID: "p1", Title: "X", Status: "paused"})

		assert.Error(t, err)
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Run("preserves project, order and creator", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		existing := &model.Task{ID: "t1", ProjectID: "p1", Title: "Régi", Order: 1, CreatedBy: "Kovács Admin János", Status: model.TaskStatusOpen}
		tasks.On("FindByID", mock.Anything, "t1").Return(existing, nil)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)
		tasks.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(tasks, projects)
		updated, err := svc.Update(context.Background(), regular(), &model.Task{
			ID:        "t1",
			ProjectID: "p-other",
			Title:     "Új",
			Status:    model.TaskStatusDone,
		})

		assert.NoError(t, err)
		assert.Equal(t, "p1", updated.ProjectID)
		assert.Equal(t, 1, updated.Order)
		assert.Equal(t, "Kovács Admin János", updated.CreatedBy)
		assert.Equal(t, model.TaskStatusDone, updated.Status)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Run("renumbers survivors to a dense sequence", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)
		tasks.On("DeleteByID", mock.Anything, "t1").Return(nil)
		// t1 (order 1) is gone; t2 keeps the stale order 2
		tasks.On("ListByProject", mock.Anything, "p1").Return([]model.Task{
			{ID: "t0", ProjectID: "p1", Order: 0},
			{ID: "t2", ProjectID: "p1", Order: 2},
		}, nil)
		tasks.On("Upsert", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
			return task.ID == "t2" && task.Order == 1
		})).Return(nil)

		svc := NewTaskService(tasks, projects)
		err := svc.Delete(context.Background(), regular(), "p1", "t1")

		assert.NoError(t, err)
		// t0 already sits at 0, only t2 is rewritten
		tasks.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("access checked before delete", func(t *testing.T) {
		tasks := new(MockTaskRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(&model.Project{ID: "p1", CreatedByID: "u1"}, nil)

		svc := NewTaskService(tasks, projects)
		err := svc.Delete(context.Background(), regular(), "p1", "t1")

		assert.Error(t, err)
		tasks.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestMaterialService_Save(t *testing.T) {
	t.Run("invalid unit rejected", func(t *testing.T) {
		materials := new(MockMaterialRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)

		svc := NewMaterialService(materials, projects)
		_, err := svc.Save(context.Background(), regular(), &model.Material{ProjectID: "p1", Name: "Csempe", Unit: "liter"})

		assert.Error(t, err)
		materials.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("missing id delete is a no-op", func(t *testing.T) {
		materials := new(MockMaterialRepository)
		projects := new(MockProjectRepository)
		materials.On("FindByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)

		svc := NewMaterialService(materials, projects)
		err := svc.Delete(context.Background(), regular(), "gone")

		assert.NoError(t, err)
		materials.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestCostService_Save(t *testing.T) {
	t.Run("invalid type rejected", func(t *testing.T) {
		costs := new(MockCostRepository)
		projects := new(MockProjectRepository)
		projects.On("FindByID", mock.Anything, "p1").Return(accessibleProject("p1"), nil)

		svc := NewCostService(costs, projects)
		_, err := svc.Save(context.Background(), regular(), &model.Cost{ProjectID: "p1", Type: "rezsi", Description: "X"})

		assert.Error(t, err)
		costs.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
