// Package metrics holds the Prometheus collectors of the alarm-stats server.
package metrics
