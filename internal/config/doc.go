// Package config defines the alarm-stats server settings and provides
// helpers to load, validate and save them in YAML format.
//
// Validate fills defaults for the source file paths, log level and shutdown
// timeout, and rejects unknown paging policies.
package config
