package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/syncveil/syncveil/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are strings in time.ParseDuration form, e.g. "30s".
type jsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	DatabasePath   string `json:"database_path"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJson overlays cfg with values from the JSON file selected via
// -c/-config. Empty JSON fields leave cfg untouched. No flag, no file read.
func parseJson(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout in %s: %w", path, err)
		}
		cfg.RequestTimeout = d
	}

	return nil
}
