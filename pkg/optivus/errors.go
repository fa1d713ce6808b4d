package optivus

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Optivus backend. Detail carries the
// server-provided message verbatim so the UI can surface it unmodified.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface. The message is exactly the backend
// detail when one was provided.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 from the backend. The portal
// treats this as "session invalid" rather than retrying.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
