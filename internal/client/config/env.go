package config

import "os"

// Environment variable names.
const (
	EnvAPIBaseURL   = "SYNCVEIL_API_URL"
	EnvDatabasePath = "SYNCVEIL_DB_PATH"
)

// parseEnv overlays cfg with values from the environment.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
