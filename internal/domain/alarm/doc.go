// Package alarm contains the alarm data model and the statistics derived from
// the alarm log.
//
// Catalog resolves alarm ids to definitions. ActivationsPerAlarm and
// ActivationsPerStation join the log to the catalog and count entries, and
// StatusReplay walks the log as a sequence of on/off transitions. All three are
// pure functions of their inputs and can run concurrently on a shared Snapshot.
package alarm
