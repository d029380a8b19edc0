package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProjectNotFound is returned when a project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrFileNotFound is returned when a file record does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrAdminOnly is returned when a non-admin attempts an admin-only action.
	ErrAdminOnly = errors.New("admin role required")
	// ErrProjectAccessDenied is returned when the actor may not see the project.
	ErrProjectAccessDenied = errors.New("no access to this project")
	// ErrInvalidUnit is returned for a material unit outside the allowed list.
	ErrInvalidUnit = errors.New("invalid material unit")
	// ErrInvalidCostType is returned for an unknown cost type.
	ErrInvalidCostType = errors.New("invalid cost type")
	// ErrUnknownStatus is returned when a project status is not in the registry.
	ErrUnknownStatus = errors.New("status not in registry")
	// ErrInvalidTaskStatus is returned for a task status outside open/in_progress/done.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProjectNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrFileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FILE_NOT_FOUND")
	case ErrAdminOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case ErrProjectAccessDenied:
		return NewHTTPError(http.StatusForbidden, err.Error(), "PROJECT_ACCESS_DENIED")
	case ErrInvalidUnit:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_UNIT")
	case ErrInvalidCostType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COST_TYPE")
	case ErrUnknownStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_STATUS")
	case ErrInvalidTaskStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TASK_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
