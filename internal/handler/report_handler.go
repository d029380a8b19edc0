package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"renomester/internal/service"
)

// ReportHandler handles the project data sheet endpoint.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport godoc
// @Summary Download the project data sheet as PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/report [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	filename, pdf, err := h.reportService.Generate(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
