package buildinfo

import "fmt"

// Set at link time with -ldflags "-X catalyzer-release/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("publish-all %s (commit=%s, date=%s)", Version, Commit, Date)
}
