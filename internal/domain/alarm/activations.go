package alarm

import "sort"

// AlarmActivations is the result of ActivationsPerAlarm.
type AlarmActivations struct {
	// Records are sorted by descending count, ties in first-seen order.
	Records []ActivationRecord
	// Unresolved lists entries skipped because their alarm id is unknown.
	Unresolved []UnresolvedReference
}

// StationActivations is the result of ActivationsPerStation.
type StationActivations struct {
	// Counts are sorted by descending count, ties in alphabetical order.
	Counts []StationActivationCount
	// Unresolved lists entries skipped because their alarm id is unknown.
	Unresolved []UnresolvedReference
}

// ActivationsPerAlarm counts log entries per alarm id, joined to the catalog.
// Entries with an unknown alarm id are skipped and reported in Unresolved.
func ActivationsPerAlarm(catalog *Catalog, log []LogEntry, opts Options) AlarmActivations {
	var (
		result   AlarmActivations
		position = make(map[int]int) // alarm id -> index in result.Records
	)

	for i, entry := range log {
		def, ok := catalog.Lookup(entry.AlarmID)
		if !ok {
			result.Unresolved = append(result.Unresolved, UnresolvedReference{Index: i, AlarmID: entry.AlarmID})

			continue
		}

		if opts.excluded(def.AlarmClass) {
			continue
		}

		if idx, seen := position[def.AlarmID]; seen {
			result.Records[idx].Count++

			continue
		}

		position[def.AlarmID] = len(result.Records)
		result.Records = append(result.Records, ActivationRecord{
			AlarmID: def.AlarmID,
			Station: def.Station,
			Label:   def.AlarmText,
			Count:   1,
		})
	}

	sort.SliceStable(result.Records, func(i, j int) bool {
		return result.Records[i].Count > result.Records[j].Count
	})

	return result
}

// ActivationsPerStation counts log entries per station, joined to the catalog.
// Entries with an unknown alarm id are skipped and reported in Unresolved.
func ActivationsPerStation(catalog *Catalog, log []LogEntry, opts Options) StationActivations {
	var (
		result     StationActivations
		perStation = make(map[string]int)
	)

	for i, entry := range log {
		def, ok := catalog.Lookup(entry.AlarmID)
		if !ok {
			result.Unresolved = append(result.Unresolved, UnresolvedReference{Index: i, AlarmID: entry.AlarmID})

			continue
		}

		if opts.excluded(def.AlarmClass) {
			continue
		}

		perStation[def.Station]++
	}

	stations := make([]string, 0, len(perStation))
	for station := range perStation {
		stations = append(stations, station)
	}

	sort.Strings(stations)

	result.Counts = make([]StationActivationCount, 0, len(stations))
	for _, station := range stations {
		result.Counts = append(result.Counts, StationActivationCount{Station: station, Count: perStation[station]})
	}

	sort.SliceStable(result.Counts, func(i, j int) bool {
		return result.Counts[i].Count > result.Counts[j].Count
	})

	return result
}
