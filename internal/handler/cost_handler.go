package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/service"
)

// CostHandler handles cost endpoints.
type CostHandler struct {
	costService service.CostService
}

// NewCostHandler creates a new cost handler.
func NewCostHandler(costService service.CostService) *CostHandler {
	return &CostHandler{costService: costService}
}

// CostRequest represents a cost create/update request.
type CostRequest struct {
	Type        string `json:"type" validate:"required,oneof=anyag munkadij egyeb"`
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
}

func (r *CostRequest) toModel(id, projectID string) (*model.Cost, *echo.HTTPError) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	return &model.Cost{
		ID:          id,
		ProjectID:   projectID,
		Type:        r.Type,
		Description: r.Description,
		Amount:      amount,
	}, nil
}

// ListCosts godoc
// @Summary List costs of a project
// @Tags costs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} model.Cost
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/costs [get]
func (h *CostHandler) ListCosts(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	costs, err := h.costService.ListByProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, costs)
}

// CreateCost godoc
// @Summary Add a cost to a project
// @Tags costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body CostRequest true "Cost data"
// @Success 201 {object} model.Cost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/costs [post]
func (h *CostHandler) CreateCost(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CostRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	cost, httpErr := req.toModel("", c.Param("id"))
	if httpErr != nil {
		return httpErr
	}

	saved, err := h.costService.Save(c.Request().Context(), actor, cost)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// UpdateCost godoc
// @Summary Update a cost
// @Tags costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Param id path string true "Cost ID"
// @Param request body CostRequest true "Cost data"
// @Success 200 {object} model.Cost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /projects/{projectID}/costs/{id} [put]
func (h *CostHandler) UpdateCost(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CostRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	cost, httpErr := req.toModel(c.Param("id"), c.Param("projectID"))
	if httpErr != nil {
		return httpErr
	}

	saved, err := h.costService.Save(c.Request().Context(), actor, cost)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteCost godoc
// @Summary Delete a cost
// @Tags costs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cost ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /costs/{id} [delete]
func (h *CostHandler) DeleteCost(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.costService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "cost deleted",
	})
}
