// Package stats runs the alarm-stats server.
//
// Service publishes immutable alarm snapshots and computes the statistics
// exposed by the HTTP API. Run wires configuration, logging, metrics, the HTTP
// and health servers, and snapshot reloads.
package stats
