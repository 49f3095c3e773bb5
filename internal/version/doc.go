// Package version exposes build metadata for alarm-stats.
//
// Version, Commit and BuildTime are injected via ldflags and reported by the
// version subcommand, the startup log and the /healthz endpoint.
package version
