// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies content-service failures so the HTTP layer can degrade or propagate them

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error.
// ID is the requested identifier (usually a slug) and may be empty.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with slug '%s' not found", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// CheckLimit rejects negative list sizes. Zero means the default size.
func CheckLimit(limit int) error {
	if limit < 0 {
		return &ValidationError{Field: "limit", Message: "must not be negative"}
	}
	return nil
}

// UnavailableError means the content service could not be reached at all:
// connection refused, DNS failure or the bounded wait expired.
type UnavailableError struct {
	Service string
	Cause   error
}

// Error implements the error interface
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
}

// Unwrap returns the transport error
func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// UpstreamError means the content service answered with a non-2xx status.
// Body holds the raw response body so it can be forwarded unchanged.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       []byte
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// InternalError is an unexpected failure. Message is what clients see;
// Cause is only logged.
type InternalError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap returns the underlying cause
func (e *InternalError) Unwrap() error {
	return e.Cause
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnavailable checks if an error is an UnavailableError
func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// AsUpstream returns the UpstreamError in err's chain, if any
func AsUpstream(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}

// IsUpstreamNotFound reports whether the content service answered 404
func IsUpstreamNotFound(err error) bool {
	upstreamErr, ok := AsUpstream(err)
	return ok && upstreamErr.StatusCode == 404
}

// AsInternal returns the InternalError in err's chain, if any
func AsInternal(err error) (*InternalError, bool) {
	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		return internalErr, true
	}
	return nil, false
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
