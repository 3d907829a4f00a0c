// Package services contains application services for the SyncVeil client:
// authentication flow and vault operations, glued together from the API
// client, the session store and the upload tracker.
package services

import (
	"context"

	"github.com/syncveil/syncveil/internal/client/api"
	"github.com/syncveil/syncveil/internal/client/models"
	"github.com/syncveil/syncveil/internal/client/session"
	"github.com/syncveil/syncveil/internal/logging"
)

// AuthService drives the account lifecycle for the CLI.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*api.SignupResult, error)
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	VerifyEmail(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
	CurrentUser(ctx context.Context) (models.SessionUser, error)
}

type authService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

func (a *authService) Signup(ctx context.Context, email, password string) (*api.SignupResult, error) {
	res, err := a.client.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if res.RequiresVerification {
		a.log.Info(ctx, "signup created unverified account", "email", res.User.Email)
	}
	return res, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "user_id", res.User.ID)
	return res, nil
}

func (a *authService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	return a.client.VerifyEmail(ctx, token)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.client.Logout(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	return a.store.IsAuthenticated(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (models.SessionUser, error) {
	return a.store.CurrentUser(ctx)
}
