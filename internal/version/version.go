// Package version holds build metadata set through ldflags:
//
//	go build -ldflags "-X git.home.luguber.info/inful/synthdocs/internal/version.Version=v0.3.0"
package version

import "fmt"

// Version contains the application version information.
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("synthdocs %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
