// Package probe serves the standard gRPC health service so orchestrators can
// probe whether alarm data has been loaded.
package probe
