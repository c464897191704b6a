// Package errors defines the application error taxonomy. Every failure a
// caller can act on is a distinct AppError value with an HTTP status and a
// stable business code; provider payloads and tokens never travel in them.
package errors

import (
	"net/http"

	"cliphub/internal/errors"
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

// WithDetails adds detailed error information
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
	// Configuration errors, raised at construction time, never mid-flow.
	ErrProviderNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"This platform is not configured for linking",
		"",
	)

	// Flow validation errors: broken or replayed linking flows. Never retried;
	// the user has to start a fresh flow.
	ErrFlowValidation = NewBaseError(
		http.StatusBadRequest,
		"FLOW_VALIDATION_FAILED",
		"The linking flow is invalid or has expired, please start over",
		"",
	)

	ErrStateMismatch = NewBaseError(
		http.StatusBadRequest,
		"STATE_MISMATCH",
		"The linking flow could not be verified, please start over",
		"",
	)

	// ErrProviderRejected covers the provider sending error= in the callback:
	// the user declined consent, or the app is misconfigured on the provider console.
	ErrProviderRejected = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_REJECTED",
		"Authorization was declined",
		"",
	)

	// Outbound call failures, one code per call class so abort paths stay
	// distinguishable in logs and responses.
	ErrTokenExchange = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_EXCHANGE_FAILED",
		"Connecting the account failed, please try again",
		"",
	)

	ErrProfileFetch = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_FETCH_FAILED",
		"Connecting the account failed, please try again",
		"",
	)

	ErrRefresh = NewBaseError(
		http.StatusBadGateway,
		"REFRESH_FAILED",
		"The connection to this account has expired, please reconnect",
		"",
	)

	ErrRevoke = NewBaseError(
		http.StatusBadGateway,
		"REVOKE_FAILED",
		"The account was disconnected locally",
		"",
	)

	// ErrChainIncomplete is Instagram-specific: the Facebook login worked but
	// no Facebook Page, or no Instagram Business Account, is linked to it.
	// The remedy is on the provider's side, not a retry.
	ErrChainIncomplete = NewBaseError(
		http.StatusUnprocessableEntity,
		"CHAIN_INCOMPLETE",
		"No Instagram business account is linked to your Facebook Page. Link one in your Instagram settings, then try again",
		"",
	)

	// ErrAccountNotLinked means the caller must initiate linking.
	ErrAccountNotLinked = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_LINKED",
		"No linked account found for this platform",
		"",
	)

	// ErrReconnectRequired means silent refresh is impossible (no refresh
	// token, or the provider rejected it); only the user can fix this.
	ErrReconnectRequired = NewBaseError(
		http.StatusConflict,
		"RECONNECT_REQUIRED",
		"The connection to this account has expired, please reconnect",
		"",
	)

	// General errors
	ErrUnknownPlatform = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_PLATFORM",
		"Unknown platform",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

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
