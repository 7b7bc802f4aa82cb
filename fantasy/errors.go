package fantasy

import (
	"errors"
	"fmt"
)

// ErrNoToken means the login call succeeded but no recognizable token field
// was present in the response.
var ErrNoToken = errors.New("login response did not include a token")

// APIError is a non-2xx response from the backend, kept with enough context
// to retry the operation manually.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// AuthError means no usable bearer token could be obtained. Nothing
// downstream can proceed without one, so callers abort the whole run.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
