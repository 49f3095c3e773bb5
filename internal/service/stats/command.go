package stats

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/oshokin/alarm-stats/internal/api/grpc/probe"
	"github.com/oshokin/alarm-stats/internal/api/rest"
	"github.com/oshokin/alarm-stats/internal/config"
	"github.com/oshokin/alarm-stats/internal/logger"
	"github.com/oshokin/alarm-stats/internal/metrics"
	repository "github.com/oshokin/alarm-stats/internal/repository/snapshot"
	"github.com/oshokin/alarm-stats/internal/version"
)

// Options controls the alarm-stats process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress overrides the HTTP listen address from the config.
	ListenAddress string
	// AlarmsFile overrides the alarm definitions path.
	AlarmsFile string
	// AlarmLogFile overrides the alarm log path.
	AlarmLogFile string
	// LogLevel overrides the configured log level.
	LogLevel string
}

// readHeaderTimeout bounds how long a client may take to send request headers.
const readHeaderTimeout = 10 * time.Second

// Run loads the alarm data and serves the HTTP API until ctx is canceled.
//
//nolint:funlen // Startup wiring reads best top to bottom.
func Run(ctx context.Context, opts *Options) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	if err = setupLogger(settings); err != nil {
		return err
	}

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-stats")

	if err = metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	repo := repository.NewFileRepository(settings.AlarmsFile, settings.AlarmLogFile)

	svc, err := NewService(ctx, repo, settings.AggregationOptions())
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	var healthServer *probe.Server

	if settings.HealthAddress != "" {
		healthServer, err = probe.Listen(ctx, settings.HealthAddress)
		if err != nil {
			return fmt.Errorf("start health server: %w", err)
		}

		healthServer.SetServing(true)
		svc.OnReload(func(err error) {
			healthServer.SetServing(err == nil)
		})
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", settings.ListenAddress)
	if err != nil {
		if healthServer != nil {
			healthServer.Shutdown(ctx)
		}

		return fmt.Errorf("listen on %s: %w", settings.ListenAddress, err)
	}

	gin.SetMode(gin.ReleaseMode)

	httpServer := &http.Server{
		Handler:           rest.NewRouter(svc),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	logger.InfoKV(ctx, "Alarm stats server listening",
		append(version.KV(),
			"listen_address", lis.Addr().String(),
			"health_address", settings.HealthAddress,
			"alarms_file", settings.AlarmsFile,
			"alarm_log_file", settings.AlarmLogFile,
			"paging_policy", settings.AggregationOptions().Paging,
		)...,
	)

	serveErrors := make(chan error, 2)

	go func() {
		if err := httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrors <- fmt.Errorf("serve HTTP: %w", err)
		}
	}()

	if healthServer != nil {
		go func() {
			if err := healthServer.Serve(); err != nil {
				serveErrors <- err
			}
		}()
	}

	go watchReloads(ctx, svc, settings.ReloadInterval)

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serveErrors:
		logger.ErrorKV(ctx, "Server failed", "error", err)
	}

	logger.Info(ctx, "Shutting down alarm stats server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settings.ShutdownTimeout)
	defer cancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.ErrorKV(ctx, "HTTP server shutdown failed", "error", shutdownErr)
	}

	if healthServer != nil {
		healthServer.Shutdown(shutdownCtx)
	}

	logger.Info(ctx, "Alarm stats server stopped")

	return err
}

// loadSettings reads the config file and applies command line overrides.
func loadSettings(opts *Options) (*config.Config, error) {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.ListenAddress != "" {
		settings.ListenAddress = opts.ListenAddress
	}

	if opts.AlarmsFile != "" {
		settings.AlarmsFile = opts.AlarmsFile
	}

	if opts.AlarmLogFile != "" {
		settings.AlarmLogFile = opts.AlarmLogFile
	}

	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	if err = config.Validate(settings); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	return settings, nil
}

// setupLogger installs the global logger with the configured format and level.
func setupLogger(settings *config.Config) error {
	format, err := logger.ParseFormat(settings.LogFormat)
	if err != nil {
		return err
	}

	level, _ := logger.ParseLogLevel(settings.LogLevel)

	logger.SetLogger(logger.NewWithFormat(format, nil))
	logger.SetLevel(level)

	return nil
}

// watchReloads reloads the snapshot on SIGHUP and every interval, if set.
func watchReloads(ctx context.Context, svc *Service, interval time.Duration) {
	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)

	defer signal.Stop(hangup)

	var tick <-chan time.Time

	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-hangup:
			logger.Info(ctx, "SIGHUP received, reloading alarm data")
		case <-tick:
		}

		// Errors are logged by Reload; the previous snapshot stays published.
		_ = svc.Reload(ctx) //nolint:errcheck // Logged inside Reload.
	}
}
