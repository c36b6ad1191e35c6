package citra

import (
	"errors"
	"fmt"
	"net/http"
)

// UnknownErrorMessage is carried by an APIError when the response body could not be read.
const UnknownErrorMessage = "unknown error"

// APIError is returned when the API answered with a non-2xx status.
type APIError struct {
	StatusCode int    `json:"status"  yaml:"status"`
	Message    string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// TransportError is returned when a call did not complete a request/response
// cycle, or when a request body could not be encoded or a response body could
// not be decoded.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("HTTP error: %v", e.Err)
	}

	return fmt.Sprintf("HTTP error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrUnknownEnvironment   = errors.New("unknown environment")
	ErrEmptyBatchResponse   = errors.New("batch response contained no elements")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidSensorFrame   = errors.New("invalid sensor frame")
	ErrInvalidAlertType     = errors.New("invalid alert type")
	ErrInvalidTargetType    = errors.New("invalid target type")
	ErrInvalidRequestType   = errors.New("invalid collection request type")
	ErrIDRequired           = errors.New("resource id is required")
	ErrRequestRequired      = errors.New("request body is required")
	ErrSatelliteIDsRequired = errors.New("at least one satellite id is required")
)

// IsNotFound checks if the error is an API error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an API error with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an API error with status 403.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsServerError checks if the error is an API error with a 5xx status.
func IsServerError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

// IsTransportError checks if the error came from the transport or codec layer.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
