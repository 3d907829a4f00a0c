// Package session persists client-side authentication state: the access and
// refresh tokens plus the user's id and email, stored as scalar entries in a
// local SQLite key-value table.
package session

import (
	"context"

	"github.com/syncveil/syncveil/internal/client/models"
)

// Store answers "is a user authenticated", supplies the bearer credential
// for API calls, and clears itself on logout.
//
// Contract:
//   - Absence of a value is not an error: CurrentUser returns empty fields
//     and AccessToken returns "" when nothing is stored.
//   - Persist writes all fields atomically; a session is only considered
//     written once its access token is present.
//   - Clear is idempotent.
type Store interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	AccessToken(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (models.SessionUser, error)
	Persist(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}
