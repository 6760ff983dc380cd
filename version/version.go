// Package version holds build metadata injected at link time via -ldflags.
package version

import "runtime"

var (
	// GitRelease is the tag or version string of this build.
	GitRelease = "dev"
	// GitCommit is the short commit hash this binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit timestamp.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain used for the build.
	GoInfo = runtime.Version()
)
