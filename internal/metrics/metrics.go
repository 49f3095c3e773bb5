package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "alarm_stats"

	// OutcomeSuccess labels successful snapshot reloads.
	OutcomeSuccess = "success"
	// OutcomeError labels failed snapshot reloads.
	OutcomeError = "error"
)

//nolint:gochecknoglobals // Collectors are process-wide, like the default registry.
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled, partitioned by route, method and status code.",
		},
		[]string{"route", "method", "code"},
	)

	httpRequestSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"route"},
	)

	unresolvedReferencesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_references_total",
			Help:      "Log entries skipped by join-based aggregations because their alarm id is unknown.",
		},
		[]string{"aggregation"},
	)

	snapshotReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_reloads_total",
			Help:      "Source reloads partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	snapshotLogEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_log_entries",
			Help:      "Number of log entries in the published snapshot.",
		},
	)

	snapshotAlarms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_alarms",
			Help:      "Number of alarm definitions in the published snapshot.",
		},
	)
)

// Register attaches alarm-stats collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		httpRequestsTotal,
		httpRequestSeconds,
		unresolvedReferencesTotal,
		snapshotReloadsTotal,
		snapshotLogEntries,
		snapshotAlarms,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}

			return err
		}
	}

	return nil
}

// ObserveRequest records a handled HTTP request.
func ObserveRequest(route, method string, code int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}

	if duration < 0 {
		duration = 0
	}

	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpRequestSeconds.WithLabelValues(route).Observe(duration.Seconds())
}

// AddUnresolved counts log entries skipped by the named aggregation.
func AddUnresolved(aggregation string, n int) {
	if n <= 0 {
		return
	}

	unresolvedReferencesTotal.WithLabelValues(aggregation).Add(float64(n))
}

// ObserveReload records a reload outcome and, on success, the snapshot size.
func ObserveReload(err error, alarms, logEntries int) {
	if err != nil {
		snapshotReloadsTotal.WithLabelValues(OutcomeError).Inc()

		return
	}

	snapshotReloadsTotal.WithLabelValues(OutcomeSuccess).Inc()
	snapshotAlarms.Set(float64(alarms))
	snapshotLogEntries.Set(float64(logEntries))
}
