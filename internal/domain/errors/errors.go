package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Account errors
var (
	ErrUserNotFound       = newError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists  = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered")
	ErrUserCreationFailed = newError(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrUserUpdateFailed   = newError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user")
	ErrAccountInactive    = newError(http.StatusUnauthorized, "ACCOUNT_INACTIVE", "Account has been deactivated")
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrPasswordStrength   = newError(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password does not meet strength requirements")
	ErrPasswordHashFailed = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
)

// Session errors
var (
	ErrRefreshTokenInvalid = newError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrSessionNotFound     = newError(http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
)

// Catalog errors
var (
	ErrCategoryNotFound     = newError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	ErrCategoryAlreadyExist = newError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS", "Category name already exists")
	ErrProductNotFound      = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrProductInactive      = newError(http.StatusUnprocessableEntity, "PRODUCT_INACTIVE", "Product is not available")
	ErrInsufficientStock    = newError(http.StatusConflict, "INSUFFICIENT_STOCK", "Insufficient stock")
	ErrInvalidImage         = newError(http.StatusBadRequest, "INVALID_IMAGE", "File is not a supported image")
	ErrImageTooLarge        = newError(http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Image exceeds the maximum size")
	ErrImageNotFound        = newError(http.StatusNotFound, "IMAGE_NOT_FOUND", "Image not found")
)

// Cart and checkout errors
var (
	ErrCartItemNotFound  = newError(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Cart item not found")
	ErrEmptyCart         = newError(http.StatusUnprocessableEntity, "EMPTY_CART", "Cart is empty")
	ErrOrderNotFound     = newError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrPreOrderNotFound  = newError(http.StatusNotFound, "PREORDER_NOT_FOUND", "Pre-order not found")
	ErrInvalidTransition = newError(http.StatusConflict, "INVALID_TRANSITION", "Status change is not allowed")
)

// Coupon errors
var (
	ErrCouponNotFound      = newError(http.StatusNotFound, "COUPON_NOT_FOUND", "Coupon not found")
	ErrCouponAlreadyExists = newError(http.StatusConflict, "COUPON_ALREADY_EXISTS", "Coupon code already exists")
	ErrInvalidCoupon       = newError(http.StatusUnprocessableEntity, "INVALID_COUPON", "Coupon is inactive, expired or exhausted")
)

// Engagement errors
var (
	ErrReviewNotFound        = newError(http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
	ErrReviewAlreadyExists   = newError(http.StatusConflict, "REVIEW_ALREADY_EXISTS", "Product already reviewed by this user")
	ErrFavoriteNotFound      = newError(http.StatusNotFound, "FAVORITE_NOT_FOUND", "Favorite not found")
	ErrFavoriteAlreadyExists = newError(http.StatusConflict, "FAVORITE_ALREADY_EXISTS", "Product is already a favorite")
	ErrNotificationNotFound  = newError(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found")
	ErrBlogNotFound          = newError(http.StatusNotFound, "BLOG_NOT_FOUND", "Blog not found")
	ErrEventNotFound         = newError(http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
	ErrAddressNotFound       = newError(http.StatusNotFound, "ADDRESS_NOT_FOUND", "Address not found")
	ErrDeviceNotFound        = newError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
)

// General errors
var (
	ErrValidationFailed  = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrTransactionFailed = newError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
	ErrInternalError     = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrForbidden         = newError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound          = newError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict          = newError(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// IsBusinessError reports whether err carries an AppError in the 4xx range.
// Business rule violations are final and must not be retried.
func IsBusinessError(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() < http.StatusInternalServerError
}

// IsRetryable reports whether err is an infrastructure failure that may succeed on retry.
func IsRetryable(err error) bool {
	return err != nil && !IsBusinessError(err)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
