// Package errors provides structured error handling for the stock news
// sentiment backend. It defines error types with codes, messages, causes,
// and contextual information so failures can be traced across the
// application layers and mapped onto HTTP responses.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeAuth              ErrorCode = "AUTH_ERROR"
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeCatalog           ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeNewsProvider      ErrorCode = "NEWS_PROVIDER_ERROR"
	ErrCodeSubscriptionStore ErrorCode = "SUBSCRIPTION_STORE_UNAVAILABLE"
	ErrCodeRateLimit         ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeTimeout           ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown           ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// AuthError creates an AppError for authentication/authorization failures.
func AuthError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message, Cause: cause, Context: context}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// CatalogUnavailableError creates an AppError for stock catalog failures.
func CatalogUnavailableError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeCatalog, Message: message, Cause: cause, Context: context}
}

// NewsProviderError creates an AppError for news provider call failures.
func NewsProviderError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNewsProvider, Message: message, Cause: cause, Context: context}
}

// SubscriptionStoreError creates an AppError for subscription store failures.
func SubscriptionStoreError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeSubscriptionStore, Message: message, Cause: cause, Context: context}
}

// RateLimitError creates an AppError for rate limiting violations.
func RateLimitError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeRateLimit, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause, Context: context}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// LogError logs an AppError with structured logging and context
func LogError(logger *slog.Logger, err error, operation string) {
	// Handle nil logger gracefully (e.g., during tests)
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
