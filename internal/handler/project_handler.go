package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renomester/internal/model"
	"renomester/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest represents a project create/update request.
type ProjectRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string   `json:"customer_phone"`
	Location      string   `json:"location"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	AssignedUsers []string `json:"assigned_users"`
}

func (r *ProjectRequest) toModel(id string) *model.Project {
	return &model.Project{
		ID:            id,
		Name:          r.Name,
		Description:   r.Description,
		Status:        r.Status,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Location:      r.Location,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		AssignedUsers: model.StringList(r.AssignedUsers),
	}
}

// ListProjects godoc
// @Summary List projects visible to the caller
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Project
// @Failure 401 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), actor)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, project)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectRequest true "Project data"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	project, err := h.projectService.Create(c.Request().Context(), actor, req.toModel(""))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body ProjectRequest true "Project data"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	project, err := h.projectService.Update(c.Request().Context(), actor, req.toModel(c.Param("id")))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project and everything attached to it
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "project deleted",
	})
}
