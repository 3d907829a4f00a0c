// Package buildinfo exposes build metadata injected at link time, e.g.:
//
//	go build -ldflags "-X github.com/syncveil/syncveil/internal/buildinfo.Version=1.2.0 \
//	  -X github.com/syncveil/syncveil/internal/buildinfo.BuildDate=2026-08-31 \
//	  -X github.com/syncveil/syncveil/internal/buildinfo.Mode=release"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version   = "N/A"
	BuildDate = "N/A"

	// Mode is "dev" or "release". Release builds refuse to fall back to the
	// local development backend URL.
	Mode = "dev"
)

// IsRelease reports whether this is a release build.
func IsRelease() bool {
	return Mode == "release"
}

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
}
