package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renomester/internal/auth"
	"renomester/internal/errors"
	"renomester/internal/model"
)

// actorFrom returns the authenticated user the JWT middleware stored in the
// request context.
func actorFrom(c echo.Context) (*model.User, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}
	return claims.Actor(), nil
}

// domainError translates a service error into an echo HTTP error.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func bindError() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}
