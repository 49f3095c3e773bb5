package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-stats/internal/config"
	"github.com/oshokin/alarm-stats/internal/domain/alarm"
)

const (
	testAlarms = `[
		{"AlarmId": 1, "Station": "StationA", "AlarmNumber": 10, "AlarmClass": "A", "AlarmText": "High Temp"},
		{"AlarmId": 2, "Station": "StationB", "AlarmNumber": 11, "AlarmClass": "B", "AlarmText": "Low Level"}
	]`
	testLog = `[
		{"AlarmId": 1, "Event": 1, "AckBy": "", "Date": "2021-03-04T10:11:12"},
		{"AlarmId": 1, "Event": 8, "AckBy": "", "Date": "2021-03-04T10:12:12"},
		{"AlarmId": 1, "Event": 0, "AckBy": "", "Date": "2021-03-04T10:13:12"}
	]`
)

// writeSources writes the two documents to a temp dir and returns their paths.
func writeSources(t *testing.T, alarms, log string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	alarmsPath := filepath.Join(dir, "alarms.json")
	logPath := filepath.Join(dir, "alarmlog.json")

	require.NoError(t, os.WriteFile(alarmsPath, []byte(alarms), config.DefaultFilePermissions))
	require.NoError(t, os.WriteFile(logPath, []byte(log), config.DefaultFilePermissions))

	return alarmsPath, logPath
}

// TestFileRepository_Load reads both documents into a snapshot preserving log order.
func TestFileRepository_Load(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(writeSources(t, testAlarms, testLog))

	s, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, s.Catalog.Len())
	require.Len(t, s.Log, 3)
	require.Equal(t, alarm.EventOn, s.Log[0].Event)
	require.Equal(t, alarm.EventPagingSentToUser, s.Log[1].Event)
	require.Equal(t, alarm.EventOff, s.Log[2].Event)
	require.False(t, s.LoadedAt.IsZero())

	def, ok := s.Catalog.Lookup(2)
	require.True(t, ok)
	require.Equal(t, "Low Level", def.AlarmText)
}

// TestFileRepository_NotFound verifies Load returns ErrSourceNotFound for missing files.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := NewFileRepository(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing-log.json"))

	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrSourceNotFound)
	require.Nil(t, s)
}

// TestFileRepository_Malformed covers bad JSON, unknown events and duplicate ids.
func TestFileRepository_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string][2]string{
		"bad json":      {`[{"AlarmId": 1,`, testLog},
		"unknown event": {testAlarms, `[{"AlarmId": 1, "Event": 15}]`},
		"duplicate id":  {`[{"AlarmId": 1}, {"AlarmId": 1}]`, `[]`},
	}

	for name, docs := range cases {
		docs := docs
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			repo := NewFileRepository(writeSources(t, docs[0], docs[1]))

			_, err := repo.Load(context.Background())
			require.ErrorIs(t, err, ErrMalformedSource)
		})
	}
}

// TestFileRepository_CanceledContext stops before reading when the context is done.
func TestFileRepository_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewFileRepository(writeSources(t, testAlarms, testLog))

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
