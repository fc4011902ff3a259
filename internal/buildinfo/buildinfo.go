// Package buildinfo holds version information set with
// -ldflags "-X github.com/taskfold/taskfold/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Codename names the release line.
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Short returns the version with its commit, e.g. "v0.3.0 (1a2b3c4)".
func Short() string {
	commit := CommitHash
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}
