// Package snapshot loads the alarm definitions and the alarm log from disk.
//
// The FileRepository decodes the two JSON documents into an immutable
// alarm.Snapshot and exposes a Repository interface that the stats service
// depends on.
package snapshot
