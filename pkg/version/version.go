// Package version carries build metadata injected via ldflags.
package version

// Set at build time with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
