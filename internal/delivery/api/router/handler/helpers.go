// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// messageResponse is the body of endpoints that return no resource.
type messageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + ": must be a valid UUID"))
	}

	return id, nil
}

// pageParams reads the limit and offset query parameters. Missing values are zero
// and the usecases apply their defaults.
func pageParams(c echo.Context) (limit, offset int, err error) {
	err = echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil || limit < 0 || offset < 0 {
		return 0, 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit and offset must be non-negative integers"))
	}

	return limit, offset, nil
}

// optionalUUIDQuery parses an optional UUID query parameter.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + ": must be a valid UUID"))
	}

	return &id, nil
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func acknowledge(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, messageResponse{Message: message})
}
