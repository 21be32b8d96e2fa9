// Package version provides version information.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/VoxDroid/cmdy/internal/version.Version=<value>".
var Version = "v0.1.0"
