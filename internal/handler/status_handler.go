package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renomester/internal/service"
)

// StatusHandler handles project status registry endpoints.
type StatusHandler struct {
	statusService service.StatusService
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// AddStatusRequest represents a status registry append request.
type AddStatusRequest struct {
	Value string `json:"value" validate:"required"`
}

// ListStatuses godoc
// @Summary List all project statuses
// @Tags statuses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /statuses [get]
func (h *StatusHandler) ListStatuses(c echo.Context) error {
	statuses, err := h.statusService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, statuses)
}

// AddStatus godoc
// @Summary Append a status to the registry
// @Tags statuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddStatusRequest true "Status value"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /statuses [post]
func (h *StatusHandler) AddStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req AddStatusRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	if err := h.statusService.Add(c.Request().Context(), actor, req.Value); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "status added",
	})
}
