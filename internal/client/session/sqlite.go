package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/syncveil/syncveil/internal/client/models"
	"github.com/syncveil/syncveil/internal/common"
	"github.com/syncveil/syncveil/internal/dbx"
)

// SQLiteStore keeps session fields in the "session" key-value table of the
// local client database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// AccessToken returns the stored bearer credential, or "" when absent.
func (s *SQLiteStore) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, common.AccessTokenKey)
}

// IsAuthenticated is true iff a non-empty access token is stored.
func (s *SQLiteStore) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// CurrentUser returns the stored identity. Absent fields come back empty;
// callers must treat an empty id as "no session".
func (s *SQLiteStore) CurrentUser(ctx context.Context) (models.SessionUser, error) {
	id, err := s.get(ctx, s.db, common.UserIDKey)
	if err != nil {
		return models.SessionUser{}, err
	}
	email, err := s.get(ctx, s.db, common.UserEmailKey)
	if err != nil {
		return models.SessionUser{}, err
	}
	return models.SessionUser{ID: id, Email: email}, nil
}

// Persist writes all session fields in a single transaction. The access
// token is written last, so an interrupted write is detectable by its
// absence and the session reads as unauthenticated.
func (s *SQLiteStore) Persist(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, common.RefreshTokenKey, sess.RefreshToken); err != nil {
			return err
		}
		if err := s.set(ctx, tx, common.UserIDKey, sess.UserID); err != nil {
			return err
		}
		if err := s.set(ctx, tx, common.UserEmailKey, sess.UserEmail); err != nil {
			return err
		}
		return s.set(ctx, tx, common.AccessTokenKey, sess.AccessToken)
	})
}

// Clear removes all session fields. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
