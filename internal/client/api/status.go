package api

import (
	"encoding/json"
	"net/http"

	"github.com/syncveil/syncveil/internal/common"
)

// operation names a backend capability and carries its user-facing failure
// strings. Status interpretation is operation-specific: a 401 on login means
// bad credentials, while a 401 on a dashboard call means an expired session.
type operation struct {
	name    string
	generic string
	network string
	// overrides maps specific failure statuses to fixed messages.
	overrides map[int]string
}

var (
	opSignup = operation{
		name:    "signup",
		generic: "Signup failed",
		network: "Network error during signup",
	}
	opLogin = operation{
		name:    "login",
		generic: "Login failed",
		network: "Network error during login",
		overrides: map[int]string{
			http.StatusUnauthorized: "Invalid email or password",
			http.StatusForbidden:    "Email not verified. Check your inbox for verification link.",
		},
	}
	opVerify = operation{
		name:    "verify",
		generic: "Verification failed",
		network: "Network error during verification",
		overrides: map[int]string{
			http.StatusBadRequest: "Verification token expired. Request a new one.",
		},
	}
	opDashboard = operation{
		name:    "dashboard",
		generic: "Failed to load dashboard",
		network: "Network error loading dashboard",
		overrides: map[int]string{
			http.StatusUnauthorized: "Session expired. Please log in again.",
		},
	}
	opUpload = operation{
		name:    "upload",
		generic: "Upload failed",
		network: "Network error during upload",
	}
	opVaultFiles = operation{
		name:    "vault files",
		generic: "Failed to load files",
		network: "Network error loading files",
	}
	opBreaches = operation{
		name:    "breach data",
		generic: "Failed to load breach data",
		network: "Network error loading breach data",
	}
)

// success reports whether status is in the HTTP success range.
func success(status int) bool {
	return status >= 200 && status < 300
}

// failureError maps a non-success response to the uniform error shape.
// Precedence: operation-specific override, then the body's detail field,
// then the operation's generic message.
func (op operation) failureError(status int, body []byte) *Error {
	if msg, ok := op.overrides[status]; ok {
		return &Error{Status: status, Message: msg, Details: body}
	}
	if msg := detailMessage(body); msg != "" {
		return &Error{Status: status, Message: msg, Details: body}
	}
	return &Error{Status: status, Message: op.generic, Details: body}
}

// networkError is the synthetic failure for transport errors where no
// response was obtained.
func (op operation) networkError() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: op.network}
}

// invalidBodyError covers a success status whose body cannot be decoded.
func (op operation) invalidBodyError(body []byte) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: op.generic, Details: body}
}

// errNotAuthenticated is returned before any network call when a bearer
// credential is required but absent. It wraps common.ErrNotAuthenticated so
// callers can match the condition with errors.Is.
func errNotAuthenticated() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Message: "Not authenticated",
		cause:   common.ErrNotAuthenticated,
	}
}

// detailMessage extracts the backend's "detail" field from a JSON error body.
func detailMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
