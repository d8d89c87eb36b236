// Package response writes the JSON envelope every API answer shares:
// a data or error body next to meta carrying the request id.
package response

import (
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries a machine readable code such as "VALIDATION_FAILED".
// Details are only sent for client errors other than 401 and 403.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string    `json:"request_id"`
	Page      *PageInfo `json:"page,omitempty"`
}

// PageInfo describes the window of a listing. Total is only set by
// listings that count their rows.
type PageInfo struct {
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Total  *int64 `json:"total,omitempty"`
}

func meta(c echo.Context, page *PageInfo) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c), Page: page}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c, nil)})
}

// SuccessWithPage answers 200 with a listing and its page window.
func SuccessWithPage(c echo.Context, data any, page *PageInfo) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta(c, page)})
}

// Blob answers 200 with a raw body, used for generated images.
func Blob(c echo.Context, contentType string, body []byte) error {
	return c.Blob(http.StatusOK, contentType, body)
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c, nil),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders a domain error with its own status and code.
// Anything else is returned for the error middleware to answer.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
