// Package version holds build metadata injected at link time.
package version

import "fmt"

// Build information, set with -ldflags "-X <module>/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String describes the build on one line.
func String() string {
	return fmt.Sprintf("fontinstall %s (commit %s, built %s)", Version, Commit, Date)
}
