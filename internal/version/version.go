// Package version carries build information injected with
// -ldflags "-X github.com/arthur-debert/mimeglob/internal/version.Version=..."
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
