package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syncveil/syncveil/internal/common"
)

func TestSuccess(t *testing.T) {
	assert.True(t, success(200))
	assert.True(t, success(201))
	assert.True(t, success(299))
	assert.False(t, success(199))
	assert.False(t, success(300))
	assert.False(t, success(401))
	assert.False(t, success(500))
}

func TestFailureError_Overrides(t *testing.T) {
	tests := []struct {
		name    string
		op      operation
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "login 401 is bad credentials",
			op:      opLogin,
			status:  http.StatusUnauthorized,
			body:    `{"detail":"whatever"}`,
			wantMsg: "Invalid email or password",
		},
		{
			name:    "login 403 is unverified email",
			op:      opLogin,
			status:  http.StatusForbidden,
			body:    `{}`,
			wantMsg: "Email not verified. Check your inbox for verification link.",
		},
		{
			name:    "verify 400 is expired token",
			op:      opVerify,
			status:  http.StatusBadRequest,
			body:    `{}`,
			wantMsg: "Verification token expired. Request a new one.",
		},
		{
			name:    "dashboard 401 is expired session",
			op:      opDashboard,
			status:  http.StatusUnauthorized,
			body:    ``,
			wantMsg: "Session expired. Please log in again.",
		},
		{
			name:    "detail field wins over generic",
			op:      opSignup,
			status:  http.StatusConflict,
			body:    `{"detail":"Email already registered"}`,
			wantMsg: "Email already registered",
		},
		{
			name:    "generic fallback without detail",
			op:      opSignup,
			status:  http.StatusBadGateway,
			body:    `not json`,
			wantMsg: "Signup failed",
		},
		{
			name:    "signup 401 has no override",
			op:      opSignup,
			status:  http.StatusUnauthorized,
			body:    `{}`,
			wantMsg: "Signup failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op.failureError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestNetworkError(t *testing.T) {
	err := opUpload.networkError()
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Network error during upload", err.Message)

	assert.Equal(t, "Network error during login", opLogin.networkError().Message)
	assert.Equal(t, "Network error loading dashboard", opDashboard.networkError().Message)
	assert.Equal(t, "Network error loading files", opVaultFiles.networkError().Message)
	assert.Equal(t, "Network error loading breach data", opBreaches.networkError().Message)
}

func TestErrNotAuthenticated(t *testing.T) {
	err := errNotAuthenticated()
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "Not authenticated", err.Message)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestErrorString(t *testing.T) {
	err := &Error{Status: 403, Message: "nope"}
	assert.Equal(t, "api error: status 403: nope", err.Error())
}
