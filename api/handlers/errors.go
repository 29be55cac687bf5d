// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses with {"message"} or {"error"} bodies

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/core/proxy"
)

// unexpectedErrorMessage is shown for 500s that carry no safer message
const unexpectedErrorMessage = "An unexpected error occurred. Please try again later."

// APIError is the body of every error response. Client errors set Message,
// server errors set Err; Detail is optional.
type APIError struct {
	status  int
	Message string      `json:"message,omitempty" doc:"What went wrong"`
	Err     string      `json:"error,omitempty" doc:"Server-side failure"`
	Detail  interface{} `json:"detail,omitempty" doc:"Additional detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}

// GetStatus implements huma.StatusError
func (e *APIError) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = newAPIError
}

// newAPIError replaces huma's problem+json errors, including its own
// request validation failures
func newAPIError(status int, msg string, errs ...error) huma.StatusError {
	e := &APIError{status: status}
	if status >= http.StatusInternalServerError {
		e.Err = msg
		return e
	}
	e.Message = msg

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		e.Detail = details
	}
	return e
}

// toHumaError converts domain errors to HTTP errors. Outside production a 500
// carries the underlying error as detail.
func toHumaError(err error, env proxy.Environment) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if upstreamErr, ok := coreerrors.AsUpstream(err); ok {
		e := &APIError{status: upstreamErr.StatusCode, Detail: upstreamDetail(upstreamErr.Body)}
		if upstreamErr.StatusCode >= http.StatusInternalServerError {
			e.Err = upstreamErr.Error()
		} else {
			e.Message = upstreamErr.Error()
		}
		return e
	}

	if coreerrors.IsUnavailable(err) {
		return huma.Error503ServiceUnavailable("Service unavailable: unable to connect to the content service")
	}

	e := &APIError{status: http.StatusInternalServerError, Err: unexpectedErrorMessage}
	if internalErr, ok := coreerrors.AsInternal(err); ok {
		e.Err = internalErr.Message
	}
	if env == nil || !env.IsProduction() {
		e.Detail = err.Error()
	}
	return e
}

// upstreamDetail forwards an upstream error body: JSON as is, anything else as text
func upstreamDetail(body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
