package api

import (
	"context"
	"io"

	"github.com/syncveil/syncveil/internal/client/models"
)

// SignupResult reports the outcome of account creation. When the new
// account's email is unverified, RequiresVerification is set and callers
// branch their flow on it without a further network call.
type SignupResult struct {
	User                 models.User
	RequiresVerification bool
	// VerificationToken is present only when the backend returns it
	// (development deployments deliver it in-band instead of by email).
	VerificationToken string
}

// LoginResult reports a successful authentication.
type LoginResult struct {
	User        models.User
	AccessToken string
}

// Client exposes one operation per backend capability. All operations
// follow the same contract: construct the request, fail fast with 401 when
// a required bearer credential is absent, map transport failures to a
// synthetic 500, and map non-success statuses through operation-specific
// interpretation. Login and signup persist the returned session.
type Client interface {
	Signup(ctx context.Context, email, password string) (*SignupResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyEmail(ctx context.Context, token string) (*models.User, error)

	// Logout clears the local session. It never fails due to backend
	// unavailability; with no stored token it succeeds trivially.
	Logout(ctx context.Context) error

	DashboardData(ctx context.Context) (*models.DashboardStats, error)

	// UploadFile streams content as a multipart body. onProgress, when
	// non-nil, receives the percentage (0–100) of body bytes the transport
	// has consumed, in non-decreasing order.
	UploadFile(ctx context.Context, name string, content io.Reader, onProgress func(percent float64)) (*models.VaultFile, error)

	VaultFiles(ctx context.Context) ([]models.VaultFile, error)
	BreachData(ctx context.Context) ([]models.Breach, error)
}
