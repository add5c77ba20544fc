// Package version holds build metadata injected via ldflags, e.g.
//
//	go build -ldflags "-X github.com/kailas-cloud/hitfilter/internal/version.Version=v0.3.0"
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
