// Package config loads runtime configuration for the SyncVeil CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables SYNCVEIL_API_URL and SYNCVEIL_DB_PATH.
//  4. Command-line flags (-a, -d), which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.syncveil.io",
//	  "database_path": "/home/me/.syncveil/syncveil.db",
//	  "request_timeout": "30s"
//	}
//
// The base URL is mandatory in release builds: LoadConfig fails with
// common.ErrNoAPIBaseURL rather than silently defaulting. Development
// builds fall back to the local backend at http://localhost:8000.
package config
