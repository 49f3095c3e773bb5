package integration

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oshokin/alarm-stats/internal/api/grpc/probe"
	"github.com/oshokin/alarm-stats/internal/api/rest"
	"github.com/oshokin/alarm-stats/internal/config"
	"github.com/oshokin/alarm-stats/internal/service/stats"
)

const (
	alarmsDocument = `[
		{"AlarmId": 1, "Station": "StationA", "AlarmNumber": 101, "AlarmClass": "A", "AlarmText": "High Temp"},
		{"AlarmId": 2, "Station": "StationB", "AlarmNumber": 102, "AlarmClass": "B", "AlarmText": "Low Level"}
	]`
	logDocument = `[
		{"AlarmId": 1, "Event": 1, "AckBy": "", "Date": "2021-03-04T10:00:00"},
		{"AlarmId": 1, "Event": 8, "AckBy": "", "Date": "2021-03-04T10:01:00"},
		{"AlarmId": 99, "Event": 1, "AckBy": "", "Date": "2021-03-04T10:02:00"},
		{"AlarmId": 1, "Event": 0, "AckBy": "", "Date": "2021-03-04T10:03:00"}
	]`
	reloadedLogDocument = `[
		{"AlarmId": 2, "Event": 1, "AckBy": "", "Date": "2021-03-05T10:00:00"},
		{"AlarmId": 2, "Event": 1, "AckBy": "", "Date": "2021-03-05T10:01:00"}
	]`
)

// freeAddress reserves a free local TCP port and releases it.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// getJSON fetches url and decodes the JSON body into v.
func getJSON(t *testing.T, url string, v any) {
	t.Helper()

	resp, err := http.Get(url) //nolint:noctx // Test helper.
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// fetchStatus reads /status without failing the test, for use in polling loops.
func fetchStatus(baseURL string) (rest.StatusModel, bool) {
	var status rest.StatusModel

	resp, err := http.Get(baseURL + "/status") //nolint:noctx // Test probe.
	if err != nil {
		return status, false
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return status, false
	}

	return status, json.NewDecoder(resp.Body).Decode(&status) == nil
}

// TestHTTP_Roundtrip starts the real server over on-disk documents and
// exercises the API, interval reloads and the health probe.
func TestHTTP_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	alarmsPath := filepath.Join(dir, "alarms.json")
	logPath := filepath.Join(dir, "alarmlog.json")
	cfgPath := filepath.Join(dir, "settings.yaml")

	require.NoError(t, os.WriteFile(alarmsPath, []byte(alarmsDocument), config.DefaultFilePermissions))
	require.NoError(t, os.WriteFile(logPath, []byte(logDocument), config.DefaultFilePermissions))

	listenAddress := freeAddress(t)
	healthAddress := freeAddress(t)

	require.NoError(t, config.Save(cfgPath, &config.Config{
		ListenAddress:  listenAddress,
		HealthAddress:  healthAddress,
		AlarmsFile:     alarmsPath,
		AlarmLogFile:   logPath,
		LogLevel:       "warn",
		ReloadInterval: 100 * time.Millisecond,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- stats.Run(ctx, &stats.Options{ConfigPath: cfgPath})
	}()

	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	baseURL := "http://" + listenAddress

	// Wait for the server to start listening.
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/healthz") //nolint:noctx // Test probe.
		if err != nil {
			return false
		}

		_ = resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	var status rest.StatusModel
	getJSON(t, baseURL+"/status", &status)
	require.Equal(t, rest.StatusModel{ActiveAlarms: 1, Activations: 2, Pagings: 1}, status)

	var perAlarm []rest.ActivationModel
	getJSON(t, baseURL+"/act_per_alarm", &perAlarm)
	require.Equal(t, []rest.ActivationModel{{AlarmID: 1, Station: "StationA", Label: "High Temp", Count: 3}}, perAlarm)

	var alarms []rest.AlarmModel
	getJSON(t, baseURL+"/alarms", &alarms)
	require.Len(t, alarms, 2)

	// Health probe reports serving.
	conn, err := grpc.NewClient(healthAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	defer func() {
		_ = conn.Close()
	}()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: probe.ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	// Replace the log; the interval reload publishes it.
	require.NoError(t, os.WriteFile(logPath, []byte(reloadedLogDocument), config.DefaultFilePermissions))

	require.Eventually(t, func() bool {
		s, ok := fetchStatus(baseURL)

		return ok && s == rest.StatusModel{ActiveAlarms: 1, Activations: 1, Pagings: 0}
	}, 5*time.Second, 50*time.Millisecond)

	// A broken log keeps the previous snapshot and flips the probe.
	require.NoError(t, os.WriteFile(logPath, []byte(`[{"AlarmId": `), config.DefaultFilePermissions))

	require.Eventually(t, func() bool {
		r, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: probe.ServiceName})

		return err == nil && r.GetStatus() == healthpb.HealthCheckResponse_NOT_SERVING
	}, 5*time.Second, 50*time.Millisecond)

	var perStation []rest.StationActivationModel
	getJSON(t, baseURL+"/act_per_station", &perStation)
	require.Equal(t, []rest.StationActivationModel{{Station: "StationB", Count: 2}}, perStation)
}
