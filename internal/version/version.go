// Package version holds build metadata injected via ldflags.
package version

// Version information (overridden at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
