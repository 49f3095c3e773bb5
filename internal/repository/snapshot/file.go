package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
)

// Repository loads alarm snapshots.
type Repository interface {
	Load(ctx context.Context) (*alarm.Snapshot, error)
}

// FileRepository reads the alarm definitions and the alarm log from two JSON
// documents on disk.
type FileRepository struct {
	// alarmsPath is the location of the alarm definitions array.
	alarmsPath string
	// logPath is the location of the alarm log array.
	logPath string
	// now stamps loaded snapshots.
	now func() time.Time
}

var (
	// ErrSourceNotFound is returned when a source document does not exist.
	ErrSourceNotFound = errors.New("source document not found")
	// ErrMalformedSource is returned when a source document cannot be decoded or validated.
	ErrMalformedSource = errors.New("malformed source document")
)

// NewFileRepository creates a repository reading the provided paths.
func NewFileRepository(alarmsPath, logPath string) *FileRepository {
	return &FileRepository{
		alarmsPath: filepath.Clean(alarmsPath),
		logPath:    filepath.Clean(logPath),
		now:        time.Now,
	}
}

// Load reads both documents and builds a new snapshot.
func (r *FileRepository) Load(ctx context.Context) (*alarm.Snapshot, error) {
	var defs []alarm.Definition
	if err := readJSON(ctx, r.alarmsPath, &defs); err != nil {
		return nil, fmt.Errorf("load alarms: %w", err)
	}

	var log []alarm.LogEntry
	if err := readJSON(ctx, r.logPath, &log); err != nil {
		return nil, fmt.Errorf("load alarm log: %w", err)
	}

	for i, entry := range log {
		if !entry.Event.Valid() {
			return nil, fmt.Errorf("alarm log entry %d: unknown event %d: %w", i, int(entry.Event), ErrMalformedSource)
		}
	}

	snapshot, err := alarm.NewSnapshot(defs, log, r.now())
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w: %w", ErrMalformedSource, err)
	}

	return snapshot, nil
}

// readJSON decodes the JSON document at path into dst.
func readJSON(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrSourceNotFound)
		}

		return fmt.Errorf("read %s: %w", path, err)
	}

	if err = json.Unmarshal(contents, dst); err != nil {
		return fmt.Errorf("decode %s: %w: %w", path, ErrMalformedSource, err)
	}

	return nil
}
