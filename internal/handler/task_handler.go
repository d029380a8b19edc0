package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renomester/internal/model"
	"renomester/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents a task create/update request.
type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=open in_progress done"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
}

// MoveTaskRequest represents a task reorder request: the index of the task
// in the current display sequence and the direction to move it.
type MoveTaskRequest struct {
	Index     int    `json:"index" validate:"min=0"`
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// ListTasks godoc
// @Summary List tasks of a project in display order
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} model.Task
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListByProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a task at the end of the project's sequence
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body TaskRequest true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	task := &model.Task{
		ProjectID:   c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
	}
	created, err := h.taskService.Create(c.Request().Context(), actor, task)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body TaskRequest true "Task data"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	task := &model.Task{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
	}
	updated, err := h.taskService.Update(c.Request().Context(), actor, task)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// MoveTask godoc
// @Summary Move a task one position up or down
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body MoveTaskRequest true "Move data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/tasks/move [post]
func (h *TaskHandler) MoveTask(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req MoveTaskRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	if err := h.taskService.Move(c.Request().Context(), actor, c.Param("id"), req.Index, req.Direction); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "task moved",
	})
}

// DeleteTask godoc
// @Summary Delete a task and renumber the rest
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param taskID path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/tasks/{taskID} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), actor, c.Param("id"), c.Param("taskID")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "task deleted",
	})
}
