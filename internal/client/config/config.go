package config

import (
	"time"

	"github.com/syncveil/syncveil/internal/buildinfo"
	"github.com/syncveil/syncveil/internal/common"
)

// devBaseURL is the local-development backend. Release builds never fall
// back to it.
const devBaseURL = "http://localhost:8000"

// Config holds runtime settings for the SyncVeil CLI.
type Config struct {
	// APIBaseURL is the backend's base URL, e.g. "https://api.syncveil.io".
	APIBaseURL string

	// RequestTimeout bounds every API call except uploads' transfer time.
	RequestTimeout time.Duration

	// DatabasePath is the local SQLite file holding the session.
	DatabasePath string

	// SettleDelay is how long an upload shows "encrypting" after transport
	// completion before settling to "secured".
	SettleDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "syncveil.db"
	c.SettleDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config by applying defaults, then overlaying the
// JSON file (if given), environment variables, and command-line flags, in
// that order of precedence.
//
// A missing base URL is an error in release builds; development builds fall
// back to the local backend.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	parseFlags(cfg)

	if cfg.APIBaseURL == "" {
		if buildinfo.IsRelease() {
			return nil, common.ErrNoAPIBaseURL
		}
		cfg.APIBaseURL = devBaseURL
	}

	return cfg, nil
}
