package alarm

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Definition describes a monitored alarm.
type Definition struct {
	// AlarmID uniquely identifies the alarm within the catalog.
	AlarmID int `json:"AlarmId"`
	// Station is the location or system the alarm belongs to.
	Station string `json:"Station"`
	// AlarmNumber is a display number, not necessarily unique.
	AlarmNumber int `json:"AlarmNumber"`
	// AlarmClass is the severity or category code.
	AlarmClass string `json:"AlarmClass"`
	// AlarmText is the human-readable description.
	AlarmText string `json:"AlarmText"`
}

// LogEntry is a single logged event against an alarm.
type LogEntry struct {
	// AlarmID references a Definition. It may have no match in the catalog.
	AlarmID int `json:"AlarmId"`
	// Event is the kind of the logged event.
	Event Event `json:"Event"`
	// AckBy is the acknowledging actor, if any.
	AckBy string `json:"AckBy"`
	// Date is when the event was logged.
	Date Timestamp `json:"Date"`
}

// Timestamp is a time.Time that also accepts local date-times without a zone
// offset, as written by the alarm log exporter. Values without an offset are
// read as UTC.
type Timestamp struct {
	time.Time
}

//nolint:gochecknoglobals // Accepted layouts, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON parses a JSON string or null into the timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		t.Time = time.Time{}

		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed

			return nil
		}
	}

	return fmt.Errorf("parse timestamp %q: %w", raw, ErrInvalidTimestamp)
}

// MarshalJSON writes the timestamp in RFC 3339 format.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

// ActivationRecord counts log entries observed for one alarm.
type ActivationRecord struct {
	AlarmID int
	Station string
	// Label is the alarm text.
	Label string
	Count int
}

// StationActivationCount counts log entries observed for one station.
type StationActivationCount struct {
	Station string
	Count   int
}

// StatusSnapshot is the outcome of replaying the alarm log.
type StatusSnapshot struct {
	// ActiveAlarms is the number of alarms still on at the end of the log.
	ActiveAlarms int
	// Activations counts On transitions of alarms that were not already on.
	Activations int
	// Pagings counts paging events accepted by the paging policy.
	Pagings int
}

// UnresolvedReference records a log entry whose alarm id has no definition.
type UnresolvedReference struct {
	// Index is the position of the entry in the log.
	Index   int
	AlarmID int
}

// Snapshot is an immutable pair of catalog and log published together.
type Snapshot struct {
	Catalog  *Catalog
	Log      []LogEntry
	LoadedAt time.Time
}

// NewSnapshot builds a snapshot from loaded definitions and log entries.
// The log slice is copied so later changes by the caller do not leak in.
func NewSnapshot(defs []Definition, log []LogEntry, loadedAt time.Time) (*Snapshot, error) {
	catalog, err := NewCatalog(defs)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Catalog:  catalog,
		Log:      append([]LogEntry(nil), log...),
		LoadedAt: loadedAt,
	}, nil
}

// SnapshotInfo describes the size and age of a snapshot.
type SnapshotInfo struct {
	Alarms     int
	LogEntries int
	LoadedAt   time.Time
}

// Info returns the size and load time of the snapshot.
func (s *Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		Alarms:     s.Catalog.Len(),
		LogEntries: len(s.Log),
		LoadedAt:   s.LoadedAt,
	}
}
