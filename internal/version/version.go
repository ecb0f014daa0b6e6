// Package version exposes build metadata injected by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (-ldflags) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the single-line version banner printed by -version.
func String() string {
	return fmt.Sprintf("lcat %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
