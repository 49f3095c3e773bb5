package alarm

// StatusReplay replays the log in order and returns the final status.
//
// An On for an alarm that is not active turns it on and counts as an
// activation; a repeated On is ignored. An Off turns an active alarm off and is
// ignored otherwise. Paging events are counted according to opts.Paging. The
// catalog is not consulted, so unknown alarm ids are replayed like any other.
func StatusReplay(log []LogEntry, opts Options) StatusSnapshot {
	var (
		snapshot StatusSnapshot
		active   = make(map[int]struct{})
	)

	for _, entry := range log {
		_, isActive := active[entry.AlarmID]

		switch {
		case entry.Event == EventOn:
			if isActive {
				continue
			}

			active[entry.AlarmID] = struct{}{}
			snapshot.ActiveAlarms++
			snapshot.Activations++
		case entry.Event == EventOff:
			if !isActive {
				continue
			}

			delete(active, entry.AlarmID)
			snapshot.ActiveAlarms--
		case opts.Paging.Counts(entry.Event):
			snapshot.Pagings++
		}
	}

	return snapshot
}
