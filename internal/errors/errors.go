package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the pipeline stage an error belongs to
type ErrorType string

const (
	ErrorTypeUsage       ErrorType = "usage"
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeConfig      ErrorType = "config"
	ErrorTypeExtraction  ErrorType = "extraction"
	ErrorTypeOCR         ErrorType = "ocr"
	ErrorTypeInference   ErrorType = "inference"
	ErrorTypePersistence ErrorType = "persistence"
)

// MarkerPrefix is prepended when an error is rendered for display
const MarkerPrefix = "[ERROR]"

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

func newError(t ErrorType, message string, cause error) *AppError {
	return &AppError{Type: t, Message: message, Cause: cause}
}

// NewUsageError creates a new usage error
func NewUsageError(message string) *AppError {
	return newError(ErrorTypeUsage, message, nil)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return newError(ErrorTypeValidation, message, cause)
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, cause error) *AppError {
	return newError(ErrorTypeConfig, message, cause)
}

// NewExtractionError creates a new feature extraction error
func NewExtractionError(message string, cause error) *AppError {
	return newError(ErrorTypeExtraction, message, cause)
}

// NewOCRError creates a new OCR error
func NewOCRError(message string, cause error) *AppError {
	return newError(ErrorTypeOCR, message, cause)
}

// NewInferenceError creates a new inference error
func NewInferenceError(message string, cause error) *AppError {
	return newError(ErrorTypeInference, message, cause)
}

// NewPersistenceError creates a new persistence error
func NewPersistenceError(message string, cause error) *AppError {
	return newError(ErrorTypePersistence, message, cause)
}

// IsType checks if the error chain contains an AppError of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Marker renders err the way it is shown to the user, e.g.
// "[ERROR] Ollama API request failed: connection refused".
func Marker(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			return fmt.Sprintf("%s %s: %v", MarkerPrefix, appErr.Message, appErr.Cause)
		}
		return fmt.Sprintf("%s %s", MarkerPrefix, appErr.Message)
	}
	return fmt.Sprintf("%s %v", MarkerPrefix, err)
}
