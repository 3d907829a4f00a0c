package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncveil/syncveil/internal/client/api"
	"github.com/syncveil/syncveil/internal/client/models"
)

// fakeSessionStore implements session.Store in memory.
type fakeSessionStore struct {
	token string
	user  models.SessionUser
}

func (f *fakeSessionStore) AccessToken(ctx context.Context) (string, error) { return f.token, nil }
func (f *fakeSessionStore) IsAuthenticated(ctx context.Context) (bool, error) {
	return f.token != "", nil
}
func (f *fakeSessionStore) CurrentUser(ctx context.Context) (models.SessionUser, error) {
	return f.user, nil
}
func (f *fakeSessionStore) Persist(ctx context.Context, s models.Session) error {
	f.token = s.AccessToken
	f.user = models.SessionUser{ID: s.UserID, Email: s.UserEmail}
	return nil
}
func (f *fakeSessionStore) Clear(ctx context.Context) error {
	f.token = ""
	f.user = models.SessionUser{}
	return nil
}

func TestAuthService_Login(t *testing.T) {
	client := &fakeAPIClient{
		LoginRes: &api.LoginResult{User: models.User{ID: "u-1"}, AccessToken: "tok"},
	}
	svc := NewAuthService(client, &fakeSessionStore{}, testLogger())

	res, err := svc.Login(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, "user@example.com", client.LastLoginEmail)
}

func TestAuthService_Login_Error(t *testing.T) {
	client := &fakeAPIClient{
		LoginErr: &api.Error{Status: 401, Message: "Invalid email or password"},
	}
	svc := NewAuthService(client, &fakeSessionStore{}, testLogger())

	_, err := svc.Login(context.Background(), "user@example.com", "bad")
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Status)
}

func TestAuthService_Signup(t *testing.T) {
	client := &fakeAPIClient{
		SignupRes: &api.SignupResult{
			User:                 models.User{ID: "u-2", Email: "new@example.com"},
			RequiresVerification: true,
		},
	}
	svc := NewAuthService(client, &fakeSessionStore{}, testLogger())

	res, err := svc.Signup(context.Background(), "new@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, res.RequiresVerification)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	client := &fakeAPIClient{
		VerifyRes: &models.User{ID: "u-1", EmailVerified: true},
	}
	svc := NewAuthService(client, &fakeSessionStore{}, testLogger())

	user, err := svc.VerifyEmail(context.Background(), "vt")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_Logout(t *testing.T) {
	client := &fakeAPIClient{}
	svc := NewAuthService(client, &fakeSessionStore{token: "tok"}, testLogger())

	require.NoError(t, svc.Logout(context.Background()))
}

func TestAuthService_Logout_ErrorPropagates(t *testing.T) {
	client := &fakeAPIClient{LogoutErr: errors.New("boom")}
	svc := NewAuthService(client, &fakeSessionStore{}, testLogger())

	require.Error(t, svc.Logout(context.Background()))
}

func TestAuthService_SessionReads(t *testing.T) {
	store := &fakeSessionStore{token: "tok", user: models.SessionUser{ID: "u-1", Email: "user@example.com"}}
	svc := NewAuthService(&fakeAPIClient{}, store, testLogger())
	ctx := context.Background()

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}
