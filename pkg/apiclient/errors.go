package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrResponseTooLarge is returned when a response body exceeds the
// configured maximum size.
var ErrResponseTooLarge = errors.New("response body too large")

// APIError represents an error body returned by a service.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsNotFound returns true if this is a not found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == "NOT_FOUND"
}

// IsValidationError returns true if this is a validation error.
func (e *APIError) IsValidationError() bool {
	return e.StatusCode == http.StatusUnprocessableEntity || e.Code == "VALIDATION_ERROR"
}

// APIError decodes a failed response body into an APIError. It returns nil
// for successful responses and for bodies without a message.
func (r *Response) APIError() *APIError {
	if r.Success() {
		return nil
	}

	var apiErr APIError
	if json.Unmarshal(r.Body, &apiErr) != nil || apiErr.Message == "" {
		return nil
	}
	apiErr.StatusCode = r.StatusCode
	return &apiErr
}
