package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
	"github.com/oshokin/alarm-stats/internal/export"
	"github.com/oshokin/alarm-stats/internal/logger"
	"github.com/oshokin/alarm-stats/internal/version"
)

// Service abstracts the operations the HTTP layer depends on.
type Service interface {
	Alarms(ctx context.Context) []alarm.Definition
	AlarmLog(ctx context.Context) []alarm.LogEntry
	ActivationsPerAlarm(ctx context.Context) []alarm.ActivationRecord
	ActivationsPerStation(ctx context.Context) []alarm.StationActivationCount
	Status(ctx context.Context) alarm.StatusSnapshot
	Info(ctx context.Context) alarm.SnapshotInfo
}

// Handler serves the alarm endpoints.
type Handler struct {
	service Service
}

// NewHandler wires the provided service into HTTP handlers.
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListAlarms godoc
// @Summary List alarm definitions
// @Tags alarms
// @Produce json
// @Success 200 {array} AlarmModel
// @Router /alarms [get]
func (h *Handler) ListAlarms(c *gin.Context) {
	c.JSON(http.StatusOK, toAlarmModels(h.service.Alarms(c.Request.Context())))
}

// ListAlarmLog godoc
// @Summary List alarm log entries in source order
// @Tags alarms
// @Produce json
// @Success 200 {array} AlarmLogModel
// @Router /alarmLog [get]
func (h *Handler) ListAlarmLog(c *gin.Context) {
	c.JSON(http.StatusOK, toAlarmLogModels(h.service.AlarmLog(c.Request.Context())))
}

// ActivationsPerAlarm godoc
// @Summary Count log entries per alarm
// @Description Sorted by descending count. Entries referencing unknown alarms are skipped.
// @Tags statistics
// @Produce json
// @Success 200 {array} ActivationModel
// @Router /act_per_alarm [get]
func (h *Handler) ActivationsPerAlarm(c *gin.Context) {
	c.JSON(http.StatusOK, toActivationModels(h.service.ActivationsPerAlarm(c.Request.Context())))
}

// ActivationsPerStation godoc
// @Summary Count log entries per station
// @Description Sorted by descending count, ties in alphabetical order. Entries referencing unknown alarms are skipped.
// @Tags statistics
// @Produce json
// @Success 200 {array} StationActivationModel
// @Router /act_per_station [get]
func (h *Handler) ActivationsPerStation(c *gin.Context) {
	c.JSON(http.StatusOK, toStationActivationModels(h.service.ActivationsPerStation(c.Request.Context())))
}

// Status godoc
// @Summary Replay the alarm log
// @Tags statistics
// @Produce json
// @Success 200 {object} StatusModel
// @Router /status [get]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, toStatusModel(h.service.Status(c.Request.Context())))
}

// ExportActivations godoc
// @Summary Download activation statistics as a workbook
// @Tags statistics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {string} string
// @Router /export/activations.xlsx [get]
func (h *Handler) ExportActivations(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := export.BuildActivationsXLSX(
		h.service.ActivationsPerAlarm(ctx),
		h.service.ActivationsPerStation(ctx),
		h.service.Status(ctx),
	)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to build activations workbook", "error", err)
		c.String(http.StatusInternalServerError, "unable to build workbook")

		return
	}

	c.Header("Content-Disposition", `attachment; filename="activations.xlsx"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, data)
}

// Health godoc
// @Summary Report the published snapshot
// @Tags service
// @Produce json
// @Success 200 {object} HealthModel
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	info := h.service.Info(c.Request.Context())

	c.JSON(http.StatusOK, HealthModel{
		Status:     "ok",
		Version:    version.Short(),
		Alarms:     info.Alarms,
		LogEntries: info.LogEntries,
		LoadedAt:   info.LoadedAt,
	})
}
