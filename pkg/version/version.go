// Package version holds build information set via ldflags.
package version

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// GitCommit is the commit hash this binary was built from.
	GitCommit = "unknown"
)
