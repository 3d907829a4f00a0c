package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is the uniform failure shape for every API operation. Callers can
// pattern-match on Status alone: 401 authentication, 403 forbidden/unverified,
// 400 validation, 500 network or backend failure.
type Error struct {
	Status  int
	Message string
	// Details is the raw response body, when one was received.
	Details json.RawMessage

	// cause, when set, links the error to a sentinel for errors.Is.
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError returns err as *Error when it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
