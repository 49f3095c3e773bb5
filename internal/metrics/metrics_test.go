package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// TestRegister_Twice ensures repeated registration on the same registry is tolerated.
func TestRegister_Twice(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

// TestCounters checks that the helpers move the expected series.
func TestCounters(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(unresolvedReferencesTotal.WithLabelValues("test_alarm"))

	AddUnresolved("test_alarm", 3)
	AddUnresolved("test_alarm", 0)

	require.InDelta(t, before+3, testutil.ToFloat64(unresolvedReferencesTotal.WithLabelValues("test_alarm")), 0)

	errorsBefore := testutil.ToFloat64(snapshotReloadsTotal.WithLabelValues(OutcomeError))

	ObserveReload(errors.New("boom"), 0, 0)

	require.InDelta(t, errorsBefore+1, testutil.ToFloat64(snapshotReloadsTotal.WithLabelValues(OutcomeError)), 0)

	requestsBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/test", "GET", "200"))

	ObserveRequest("/test", "GET", 200, -time.Second)

	require.InDelta(t, requestsBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/test", "GET", "200")), 0)
}
