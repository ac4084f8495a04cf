package gitea

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies where in the request lifecycle a failure occurred.
type ErrorKind string

const (
	// ErrorKindHTTP means the server answered with a 4xx/5xx status.
	ErrorKindHTTP ErrorKind = "http"

	// ErrorKindSerialization means a 2xx body could not be decoded into the
	// expected model.
	ErrorKindSerialization ErrorKind = "serialization"

	// ErrorKindTransport means the request never produced a response
	// (DNS, TLS, timeout, connection reset).
	ErrorKindTransport ErrorKind = "transport"
)

// Error is the structured error returned for every failed API call.
// Message carries the raw response body text for HTTP errors and the
// decoder's message for serialization errors.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gitea: %s error (status %d)", e.Kind, e.StatusCode)
	}

	return fmt.Sprintf("gitea: %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// AsError extracts the structured *Error from an error chain, or nil.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	return nil
}

// IsNotFound reports whether err is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	apiErr := AsError(err)

	return apiErr != nil && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an HTTP 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr := AsError(err)

	return apiErr != nil && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is an HTTP 403 from the API.
func IsForbidden(err error) bool {
	apiErr := AsError(err)

	return apiErr != nil && apiErr.StatusCode == http.StatusForbidden
}

// Static errors for configuration failures.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrEndpointRequired     = errors.New("endpoint is required")
	ErrInvalidAuthHeader    = errors.New("credentials contain characters not representable in an HTTP header")
	ErrAmbiguousCredentials = errors.New("provide either a token or username/password, not both")
)
