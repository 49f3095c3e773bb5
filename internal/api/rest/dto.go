package rest

import (
	"time"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
)

// AlarmModel is the public projection of an alarm definition.
type AlarmModel struct {
	ID      int    `json:"id" example:"1"`
	Station string `json:"station" example:"StationA"`
	Number  int    `json:"number" example:"101"`
	Class   string `json:"class" example:"A"`
	Text    string `json:"text" example:"High Temp"`
}

// AlarmLogModel is a log entry as loaded from the source document.
type AlarmLogModel struct {
	AlarmID int       `json:"alarmId" example:"1"`
	Event   int       `json:"event" example:"1"`
	AckBy   string    `json:"ackBy" example:"operator"`
	Date    time.Time `json:"date"`
}

// ActivationModel counts log entries for one alarm.
type ActivationModel struct {
	AlarmID int    `json:"alarmId" example:"1"`
	Station string `json:"station" example:"StationA"`
	Label   string `json:"label" example:"High Temp"`
	Count   int    `json:"count" example:"3"`
}

// StationActivationModel counts log entries for one station.
type StationActivationModel struct {
	Station string `json:"station" example:"StationA"`
	Count   int    `json:"count" example:"3"`
}

// StatusModel is the replayed alarm status.
type StatusModel struct {
	ActiveAlarms int `json:"activeAlarms" example:"0"`
	Activations  int `json:"activations" example:"1"`
	Pagings      int `json:"pagings" example:"1"`
}

// HealthModel describes the published snapshot.
type HealthModel struct {
	Status     string    `json:"status" example:"ok"`
	Version    string    `json:"version" example:"0.1.0"`
	Alarms     int       `json:"alarms" example:"12"`
	LogEntries int       `json:"logEntries" example:"340"`
	LoadedAt   time.Time `json:"loadedAt"`
}

// toAlarmModels projects definitions into the public shape.
func toAlarmModels(defs []alarm.Definition) []AlarmModel {
	models := make([]AlarmModel, 0, len(defs))
	for _, def := range defs {
		models = append(models, AlarmModel{
			ID:      def.AlarmID,
			Station: def.Station,
			Number:  def.AlarmNumber,
			Class:   def.AlarmClass,
			Text:    def.AlarmText,
		})
	}

	return models
}

// toAlarmLogModels converts log entries keeping their order.
func toAlarmLogModels(log []alarm.LogEntry) []AlarmLogModel {
	models := make([]AlarmLogModel, 0, len(log))
	for _, entry := range log {
		models = append(models, AlarmLogModel{
			AlarmID: entry.AlarmID,
			Event:   int(entry.Event),
			AckBy:   entry.AckBy,
			Date:    entry.Date.Time,
		})
	}

	return models
}

// toActivationModels converts per-alarm counts.
func toActivationModels(records []alarm.ActivationRecord) []ActivationModel {
	models := make([]ActivationModel, 0, len(records))
	for _, r := range records {
		models = append(models, ActivationModel{
			AlarmID: r.AlarmID,
			Station: r.Station,
			Label:   r.Label,
			Count:   r.Count,
		})
	}

	return models
}

// toStationActivationModels converts per-station counts.
func toStationActivationModels(counts []alarm.StationActivationCount) []StationActivationModel {
	models := make([]StationActivationModel, 0, len(counts))
	for _, c := range counts {
		models = append(models, StationActivationModel{Station: c.Station, Count: c.Count})
	}

	return models
}

// toStatusModel converts the replayed status.
func toStatusModel(s alarm.StatusSnapshot) StatusModel {
	return StatusModel{
		ActiveAlarms: s.ActiveAlarms,
		Activations:  s.Activations,
		Pagings:      s.Pagings,
	}
}
