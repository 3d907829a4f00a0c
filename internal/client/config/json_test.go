package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://json.example",
		"database_path":   "json.db",
		"request_timeout": "10s",
	})

	t.Run("loads from -config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "https://json.example", cfg.APIBaseURL)
		assert.Equal(t, "json.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "https://defaults.example", RequestTimeout: 42 * time.Second}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "https://defaults.example", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("empty fields leave config untouched", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_path": "other.db",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{APIBaseURL: "https://keep.example", RequestTimeout: 5 * time.Second}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "https://keep.example", cfg.APIBaseURL)
		assert.Equal(t, "other.db", cfg.DatabasePath)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		cfg := &Config{}
		require.Error(t, parseJson(cfg))
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Error(t, parseJson(cfg))
	})

	t.Run("invalid duration is an error", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "dur.json", map[string]any{
			"request_timeout": "soon",
		})
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Error(t, parseJson(cfg))
	})
}
