package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
	"github.com/oshokin/alarm-stats/internal/logger"
)

// Config holds the settings of the alarm-stats server.
type Config struct {
	// ListenAddress is the TCP address the HTTP API listens on.
	ListenAddress string `yaml:"listen_addr"`
	// HealthAddress is an optional TCP address for the gRPC health service.
	HealthAddress string `yaml:"health_addr,omitempty"`
	// AlarmsFile is the path to the JSON array of alarm definitions.
	AlarmsFile string `yaml:"alarms_file"`
	// AlarmLogFile is the path to the JSON array of alarm log entries.
	AlarmLogFile string `yaml:"alarm_log_file"`
	// LogLevel is the minimum level of log messages.
	LogLevel string `yaml:"log_level"`
	// LogFormat is either "console" or "json".
	LogFormat string `yaml:"log_format"`
	// ReloadInterval re-reads the source files periodically. Zero disables it.
	ReloadInterval time.Duration `yaml:"reload_interval"`
	// ShutdownTimeout bounds graceful shutdown of the servers.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// Stats tunes the aggregations.
	Stats Stats `yaml:"stats"`
}

// Stats holds aggregation settings.
type Stats struct {
	// PagingPolicy is "all" to count every paging event or "sent" for the initial one only.
	PagingPolicy string `yaml:"paging_policy"`
	// ExcludedClasses lists alarm classes left out of the activation counts.
	ExcludedClasses []string `yaml:"excluded_classes,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for server settings.
	DefaultConfigFilename = "alarm-stats-settings.yaml"

	// DefaultAlarmsFilename is the default filename for alarm definitions.
	DefaultAlarmsFilename = "alarms.json"

	// DefaultAlarmLogFilename is the default filename for the alarm log.
	DefaultAlarmLogFilename = "alarmlog.json"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultShutdownTimeout is the default graceful shutdown budget.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errListenAddressRequired is returned when the listen address is missing.
	errListenAddressRequired = errors.New("listen address must be provided")
	// errNegativeInterval is returned for negative durations.
	errNegativeInterval = errors.New("reload interval must not be negative")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ListenAddress == "" {
		return errListenAddressRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	if settings.HealthAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.HealthAddress); err != nil {
			return fmt.Errorf("invalid health address: %w", err)
		}
	}

	if settings.AlarmsFile == "" {
		settings.AlarmsFile = DefaultAlarmsFilename
	}

	if settings.AlarmLogFile == "" {
		settings.AlarmLogFile = DefaultAlarmLogFilename
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q", settings.LogLevel)
	}

	if _, err := logger.ParseFormat(settings.LogFormat); err != nil {
		return err
	}

	if settings.ReloadInterval < 0 {
		return errNegativeInterval
	}

	// Set default shutdown timeout if not specified
	if settings.ShutdownTimeout <= 0 {
		settings.ShutdownTimeout = DefaultShutdownTimeout
	}

	if _, err := alarm.ParsePagingPolicy(settings.Stats.PagingPolicy); err != nil {
		return fmt.Errorf("invalid stats settings: %w", err)
	}

	return nil
}

// AggregationOptions converts the stats settings into domain options.
// The settings must have passed Validate.
func (c *Config) AggregationOptions() alarm.Options {
	policy, _ := alarm.ParsePagingPolicy(c.Stats.PagingPolicy) //nolint:errcheck // Checked by Validate.

	return alarm.Options{
		Paging:          policy,
		ExcludedClasses: append([]string(nil), c.Stats.ExcludedClasses...),
	}
}
