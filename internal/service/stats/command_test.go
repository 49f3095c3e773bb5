package stats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-stats/internal/config"
)

// TestLoadSettings_Overrides verifies command line values win over the config file.
func TestLoadSettings_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, &config.Config{
		ListenAddress: "127.0.0.1:8080",
		AlarmsFile:    "alarms.json",
		AlarmLogFile:  "alarmlog.json",
		LogLevel:      "info",
	}))

	settings, err := loadSettings(&Options{
		ConfigPath:    path,
		ListenAddress: "127.0.0.1:9090",
		AlarmLogFile:  "other.json",
		LogLevel:      "debug",
	})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", settings.ListenAddress)
	require.Equal(t, "alarms.json", settings.AlarmsFile)
	require.Equal(t, "other.json", settings.AlarmLogFile)
	require.Equal(t, "debug", settings.LogLevel)

	_, err = loadSettings(&Options{ConfigPath: path, LogLevel: "loud"})
	require.Error(t, err)

	_, err = loadSettings(&Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
