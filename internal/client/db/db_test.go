package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func TestOpen_AppliesMigrations(t *testing.T) {
	database, err := Open(context.Background(), "file:dbopen?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	// session table must exist after migrations
	_, err = database.Exec(`INSERT INTO session(key,value) VALUES('access_token','x')`)
	require.NoError(t, err)

	var v string
	require.NoError(t, database.QueryRow(`SELECT value FROM session WHERE key='access_token'`).Scan(&v))
	require.Equal(t, "x", v)
}

func TestOpen_InvalidDSN(t *testing.T) {
	_, err := Open(context.Background(), "file:/nonexistent-dir/nope/db.sqlite?mode=ro")
	require.Error(t, err)
}
