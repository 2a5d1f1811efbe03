// Package errors provides the structured error types used across the
// spendcheck API. All service-layer errors are AppErrors so that handlers
// can produce consistent responses without leaking internals to clients.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error code,
// a human-readable message, the HTTP status to respond with, and an
// optional wrapped internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel that wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Accounting errors. Validation failures are detected before any store
// mutation is attempted; a nonexistent id on delete is deliberately NOT
// represented here because deleting it is a silent no-op.
var (
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive number", StatusCode: http.StatusBadRequest}
	ErrInvalidLimit    = &AppError{Code: "INVALID_LIMIT", Message: "Budget limit must be a positive number", StatusCode: http.StatusBadRequest}
	ErrInvalidDateKey  = &AppError{Code: "INVALID_DATE", Message: "Date must be in YYYY-MM-DD format", StatusCode: http.StatusBadRequest}
	ErrInvalidMonthKey = &AppError{Code: "INVALID_MONTH", Message: "Month must be in YYYY-MM format", StatusCode: http.StatusBadRequest}
)

// Store errors. Write failures surface as STORE_UNAVAILABLE; read failures
// degrade to empty results at the service layer instead of propagating.
var (
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "The expense store is temporarily unavailable", StatusCode: http.StatusServiceUnavailable}
)
