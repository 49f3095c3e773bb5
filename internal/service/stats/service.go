package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
	"github.com/oshokin/alarm-stats/internal/logger"
	"github.com/oshokin/alarm-stats/internal/metrics"
	repo "github.com/oshokin/alarm-stats/internal/repository/snapshot"
)

// Aggregation names used in logs and metrics.
const (
	aggregationPerAlarm   = "act_per_alarm"
	aggregationPerStation = "act_per_station"
)

// Service serves alarm data and statistics from the published snapshot.
//
// The snapshot is replaced as a whole on reload, so every request works on one
// consistent pair of catalog and log without locking.
type Service struct {
	// repo loads fresh snapshots.
	repo repo.Repository
	// current is the published snapshot.
	current atomic.Pointer[alarm.Snapshot]
	// opts tunes the aggregations.
	opts alarm.Options
	// reloadMu serializes reloads.
	reloadMu sync.Mutex
	// listeners are notified after every reload attempt.
	listeners []func(error)
}

// ErrNoSnapshot is returned when a service is created without data.
var ErrNoSnapshot = errors.New("no snapshot loaded")

// NewService loads the initial snapshot from repository. A load failure is
// returned as is: malformed sources are fatal at startup.
func NewService(ctx context.Context, repository repo.Repository, opts alarm.Options) (*Service, error) {
	if repository == nil {
		return nil, ErrNoSnapshot
	}

	snapshot, err := repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	s := &Service{
		repo: repository,
		opts: opts,
	}

	s.publish(ctx, snapshot)

	return s, nil
}

// OnReload registers fn to be called after each reload with its error, or
// nil on success. It must be called before the service is shared.
func (s *Service) OnReload(fn func(error)) {
	s.listeners = append(s.listeners, fn)
}

// Reload loads a new snapshot and publishes it. On failure the previous
// snapshot stays in place.
func (s *Service) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		metrics.ObserveReload(err, 0, 0)
		logger.ErrorKV(ctx, "Snapshot reload failed, keeping previous data", "error", err)
		s.notify(err)

		return fmt.Errorf("reload snapshot: %w", err)
	}

	s.publish(ctx, snapshot)
	s.notify(nil)

	return nil
}

// publish swaps in snapshot and records its size.
func (s *Service) publish(ctx context.Context, snapshot *alarm.Snapshot) {
	s.current.Store(snapshot)
	metrics.ObserveReload(nil, snapshot.Catalog.Len(), len(snapshot.Log))

	logger.InfoKV(ctx, "Alarm snapshot published",
		"alarms", snapshot.Catalog.Len(),
		"log_entries", len(snapshot.Log),
	)
}

// notify calls reload listeners.
func (s *Service) notify(err error) {
	for _, fn := range s.listeners {
		fn(err)
	}
}

// snapshot returns the published snapshot.
func (s *Service) snapshot() *alarm.Snapshot {
	return s.current.Load()
}

// Info returns the size and load time of the published snapshot.
func (s *Service) Info(context.Context) alarm.SnapshotInfo {
	return s.snapshot().Info()
}

// Alarms returns all alarm definitions in load order.
func (s *Service) Alarms(context.Context) []alarm.Definition {
	return s.snapshot().Catalog.Definitions()
}

// AlarmLog returns a copy of the alarm log in source order.
func (s *Service) AlarmLog(context.Context) []alarm.LogEntry {
	return append([]alarm.LogEntry(nil), s.snapshot().Log...)
}

// ActivationsPerAlarm counts log entries per alarm.
func (s *Service) ActivationsPerAlarm(ctx context.Context) []alarm.ActivationRecord {
	snapshot := s.snapshot()
	result := alarm.ActivationsPerAlarm(snapshot.Catalog, snapshot.Log, s.opts)

	reportUnresolved(ctx, aggregationPerAlarm, result.Unresolved)

	return result.Records
}

// ActivationsPerStation counts log entries per station.
func (s *Service) ActivationsPerStation(ctx context.Context) []alarm.StationActivationCount {
	snapshot := s.snapshot()
	result := alarm.ActivationsPerStation(snapshot.Catalog, snapshot.Log, s.opts)

	reportUnresolved(ctx, aggregationPerStation, result.Unresolved)

	return result.Counts
}

// Status replays the alarm log.
func (s *Service) Status(context.Context) alarm.StatusSnapshot {
	return alarm.StatusReplay(s.snapshot().Log, s.opts)
}

// reportUnresolved logs skipped log entries. Clients never see them.
func reportUnresolved(ctx context.Context, aggregation string, unresolved []alarm.UnresolvedReference) {
	if len(unresolved) == 0 {
		return
	}

	metrics.AddUnresolved(aggregation, len(unresolved))

	for _, ref := range unresolved {
		logger.WarnKV(ctx, "Log entry references unknown alarm, skipped",
			"aggregation", aggregation,
			"log_index", ref.Index,
			"alarm_id", ref.AlarmID,
		)
	}
}
