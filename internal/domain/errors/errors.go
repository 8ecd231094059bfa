package errors

import (
	"net/http"

	"refuge/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code used by the gateway
	ErrorCode() string // Error kind code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Error kind codes. Every public operation fails with exactly one of these.
const (
	CodeImageTooLarge  = "IMAGE_TOO_LARGE"
	CodeValidation     = "VALIDATION_FAILED"
	CodeNotFound       = "NOT_FOUND"
	CodeBackingService = "BACKING_SERVICE_FAILED"
)

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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError of the same kind, so detailed copies still match the sentinels.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the error kind code
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

// Predefined error kinds
var (
	// ErrImageTooLarge is returned when an image is still over the size ceiling after compression.
	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		CodeImageTooLarge,
		"Image trop volumineuse, choisissez une image plus petite",
		"",
	)

	// ErrValidationFailed is returned when a caller-supplied field fails a local precondition.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidation,
		"Données invalides",
		"",
	)

	// ErrNotFound is returned when a referenced principal or animal is absent.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Ressource introuvable",
		"",
	)
)

// BackingServiceError wraps any failure of the identity provider, the document
// store or local persistence. The cause is kept unmodified.
type BackingServiceError struct {
	service string
	op      string
	err     error
}

// NewBackingServiceError creates a backing-service error for the given service and operation.
func NewBackingServiceError(service, op string, err error) error {
	return &BackingServiceError{
		service: service,
		op:      op,
		err:     err,
	}
}

// Error implements the error interface
func (e *BackingServiceError) Error() string {
	if e.err == nil {
		return e.service + " " + e.op + " failed"
	}

	return errors.Wrapf(e.err, "%s %s failed", e.service, e.op).Error()
}

// Unwrap returns the original cause
func (e *BackingServiceError) Unwrap() error {
	return e.err
}

// Service returns the name of the failing backing service
func (e *BackingServiceError) Service() string {
	return e.service
}

// HTTPCode returns the HTTP status code
func (e *BackingServiceError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the error kind code
func (e *BackingServiceError) ErrorCode() string {
	return CodeBackingService
}

// Message returns the user-friendly error message
func (e *BackingServiceError) Message() string {
	return "Une erreur est survenue. Veuillez réessayer."
}

// Details returns detailed error information
func (e *BackingServiceError) Details() string {
	return e.op
}

// Kind returns the error kind code carried by err, or CodeBackingService when
// err carries none, since anything unclassified came from a collaborator.
func Kind(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return CodeBackingService
}
