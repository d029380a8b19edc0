package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/service"
)

// MaterialHandler handles material endpoints.
type MaterialHandler struct {
	materialService service.MaterialService
}

// NewMaterialHandler creates a new material handler.
func NewMaterialHandler(materialService service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// MaterialRequest represents a material create/update request. Quantity and
// unit price travel as strings so fractional forint values survive intact.
type MaterialRequest struct {
	Name      string `json:"name" validate:"required"`
	Quantity  string `json:"quantity" validate:"required"`
	Unit      string `json:"unit" validate:"required"`
	UnitPrice string `json:"unit_price" validate:"required"`
	Supplier  string `json:"supplier"`
	Note      string `json:"note"`
}

func (r *MaterialRequest) toModel(id, projectID string) (*model.Material, *echo.HTTPError) {
	quantity, err := decimal.NewFromString(r.Quantity)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid quantity",
			Code:  "INVALID_QUANTITY",
		})
	}
	unitPrice, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid unit_price",
			Code:  "INVALID_UNIT_PRICE",
		})
	}

	return &model.Material{
		ID:        id,
		ProjectID: projectID,
		Name:      r.Name,
		Quantity:  quantity,
		Unit:      r.Unit,
		UnitPrice: unitPrice,
		Supplier:  r.Supplier,
		Note:      r.Note,
	}, nil
}

// ListMaterials godoc
// @Summary List materials of a project
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} model.Material
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/materials [get]
func (h *MaterialHandler) ListMaterials(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	materials, err := h.materialService.ListByProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, materials)
}

// CreateMaterial godoc
// @Summary Add a material line to a project
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body MaterialRequest true "Material data"
// @Success 201 {object} model.Material
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/materials [post]
func (h *MaterialHandler) CreateMaterial(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req MaterialRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	material, httpErr := req.toModel("", c.Param("id"))
	if httpErr != nil {
		return httpErr
	}

	saved, err := h.materialService.Save(c.Request().Context(), actor, material)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// UpdateMaterial godoc
// @Summary Update a material line
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path string true "Project ID"
// @Param id path string true "Material ID"
// @Param request body MaterialRequest true "Material data"
// @Success 200 {object} model.Material
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /projects/{projectID}/materials/{id} [put]
func (h *MaterialHandler) UpdateMaterial(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req MaterialRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	material, httpErr := req.toModel(c.Param("id"), c.Param("projectID"))
	if httpErr != nil {
		return httpErr
	}

	saved, err := h.materialService.Save(c.Request().Context(), actor, material)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteMaterial godoc
// @Summary Delete a material line
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.materialService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "material deleted",
	})
}
