// Package version exposes build version information.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/garrettcampbell3/display-library/internal/version.Version=v0.3.0 \
//	                   -X github.com/garrettcampbell3/display-library/internal/version.Commit=abc123"
//
// When unset, values come from the Go build info (VCS stamps), falling
// back to "dev"/"unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version != "" && Commit != "" {
		return
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		var revision, modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if Commit == "" && revision != "" {
			if len(revision) > 7 {
				revision = revision[:7]
			}
			Commit = revision
			if modified == "true" {
				Commit += "-dirty"
			}
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// Full returns the full version string including commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
