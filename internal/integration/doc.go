// Package integration holds end-to-end tests that run the alarm-stats server
// against documents on disk.
package integration
