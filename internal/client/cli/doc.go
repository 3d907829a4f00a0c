// Package cli implements the interactive SyncVeil command-line client.
//
// The entry point is App, constructed from a config.Config. App wires the
// local session database, the HTTP API client and the application services,
// then runs a small REPL that dispatches commands such as signup, login,
// upload and dashboard. Interactive input helpers live in input.go and carry
// test seams so commands can be exercised without a terminal.
package cli
