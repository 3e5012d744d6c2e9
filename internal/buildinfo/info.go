// Package buildinfo carries version metadata injected at build time.
package buildinfo

// Set via -ldflags "-X github.com/tillview-dev/tillview/internal/buildinfo.Version=..."
// and friends; the defaults identify an untagged development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
