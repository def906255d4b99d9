// Package errors defines the application error taxonomy: errors carrying an
// HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"drogo/internal/errors"
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

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and session errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account found for this user",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrSignInRequired = NewBaseError(
		http.StatusUnauthorized,
		"SIGN_IN_REQUIRED",
		"Please sign in to place an order",
		"",
	)

	// Checkout validation errors. A failed placement mutates nothing, so the
	// user can correct and resubmit.
	ErrEmptyCart = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrZeroTotal = NewBaseError(
		http.StatusUnprocessableEntity,
		"ZERO_TOTAL",
		"Order total must be positive",
		"",
	)

	ErrMissingAddress = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSING_ADDRESS",
		"Please set a delivery address before checkout",
		"",
	)

	ErrMissingDeliverySpot = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSING_DELIVERY_SPOT",
		"Please pick a delivery spot before checkout",
		"",
	)

	// Order lifecycle errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"No order found for this id",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order status can only move forward or to cancelled",
		"",
	)

	ErrUnknownStatus = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_STATUS",
		"Unrecognized order status",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Unrecognized pickup QR code",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"No product found for this id",
		"",
	)

	// Location errors
	ErrSpotNotFound = NewBaseError(
		http.StatusNotFound,
		"SPOT_NOT_FOUND",
		"No delivery spot found for this id",
		"",
	)

	ErrSpotUnavailable = NewBaseError(
		http.StatusConflict,
		"SPOT_UNAVAILABLE",
		"This delivery spot is currently unavailable",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level store failure as a generic
// internal error carrying the underlying detail.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"STORE_EXECUTE_FAILED",
		message,
		details,
	)
}
