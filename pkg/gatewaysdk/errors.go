package gatewaysdk

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError reports that the backend could not be reached at all:
// connection refused, DNS failure, timeout. No HTTP response exists.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Network error: cannot reach backend at %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a backend response body that could not be parsed as
// JSON. The backend's HTTP status is preserved so callers can forward it.
type DecodeError struct {
	StatusCode int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Invalid response from backend (%d)", e.StatusCode)
}

// BackendError is a non-2xx application response from the backend with a
// normalized message pulled from its envelope.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned HTTP %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a backend 401, which means the
// bearer token is no longer valid and any stored session should be cleared.
func IsUnauthorized(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.StatusCode == http.StatusUnauthorized
}
