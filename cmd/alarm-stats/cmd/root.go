package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-stats/internal/config"
	"github.com/oshokin/alarm-stats/internal/service/stats"
	"github.com/oshokin/alarm-stats/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// alarmsFile overrides the alarm definitions document.
	alarmsFile string
	// alarmLogFile overrides the alarm log document.
	alarmLogFile string
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command for running the HTTP API.
	rootCmd = &cobra.Command{
		Use:   "alarm-stats [listen-address]",
		Short: "Serve alarm definitions and statistics derived from the alarm log.",
		Long: `Starts the read-only HTTP API for alarm data.

Alarm definitions and the alarm log are read from JSON files at startup and kept
in memory. Statistics (activations per alarm, per station and the replayed status)
are computed on every request from that data.

Listen address can be provided as argument to override config (e.g., :8080).
Send SIGHUP to reload the JSON files without restarting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &stats.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				AlarmsFile:    alarmsFile,
				AlarmLogFile:  alarmLogFile,
				LogLevel:      logLevel,
			}

			return stats.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-stats CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&alarmsFile, "alarms", "a", "", "path to alarm definitions JSON (overrides config)")
	rootCmd.Flags().StringVarP(&alarmLogFile, "alarm-log", "l", "", "path to alarm log JSON (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
