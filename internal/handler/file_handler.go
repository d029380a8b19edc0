package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"renomester/internal/errors"
	"renomester/internal/service"
)

// FileHandler handles file attachment endpoints.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new file handler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// ListFiles godoc
// @Summary List files of a project
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {array} model.AppFile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/files [get]
func (h *FileHandler) ListFiles(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	files, err := h.fileService.ListByProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, files)
}

// UploadFiles godoc
// @Summary Upload one or more files to a project
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param files formData file true "Files to upload"
// @Param task_id formData string false "Optional task ID"
// @Success 201 {array} model.AppFile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/files [post]
func (h *FileHandler) UploadFiles(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid multipart form",
			Code:  "INVALID_FORM",
		})
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "no files in request",
			Code:  "NO_FILES",
		})
	}

	uploads := make([]service.Upload, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "cannot read " + header.Filename,
				Code:  "INVALID_FILE",
			})
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "cannot read " + header.Filename,
				Code:  "INVALID_FILE",
			})
		}
		uploads = append(uploads, service.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	taskID := c.FormValue("task_id")
	records, err := h.fileService.Upload(c.Request().Context(), actor, c.Param("id"), taskID, uploads)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, records)
}

// DeleteFile godoc
// @Summary Delete a file record and its stored payload
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /files/{id} [delete]
func (h *FileHandler) DeleteFile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.fileService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "file deleted",
	})
}
