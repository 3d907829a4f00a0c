package common

import "errors"

// Sentinel errors shared by client layers. Callers match them with errors.Is.
var (
	// ErrNotAuthenticated means a protected operation was attempted with no
	// access token in the local store.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoAPIBaseURL means a release build was started without a configured
	// backend base URL.
	ErrNoAPIBaseURL = errors.New("api base url is not configured")
)
