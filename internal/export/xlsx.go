package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
)

// Sheet names of the activations workbook.
const (
	SheetAlarms   = "alarms"
	SheetStations = "stations"
	SheetStatus   = "status"
)

// ContentTypeXLSX is the media type of the generated workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BuildActivationsXLSX renders per-alarm and per-station activation counts and
// the replayed status into a workbook.
func BuildActivationsXLSX(
	perAlarm []alarm.ActivationRecord,
	perStation []alarm.StationActivationCount,
	status alarm.StatusSnapshot,
) ([]byte, error) {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetAlarms); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for _, name := range []string{SheetStations, SheetStatus} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	alarmRows := [][]any{{"Alarm ID", "Station", "Text", "Count"}}
	for _, r := range perAlarm {
		alarmRows = append(alarmRows, []any{r.AlarmID, r.Station, r.Label, r.Count})
	}

	stationRows := [][]any{{"Station", "Count"}}
	for _, s := range perStation {
		stationRows = append(stationRows, []any{s.Station, s.Count})
	}

	statusRows := [][]any{
		{"Active alarms", status.ActiveAlarms},
		{"Activations", status.Activations},
		{"Pagings", status.Pagings},
	}

	for sheet, rows := range map[string][][]any{
		SheetAlarms:   alarmRows,
		SheetStations: stationRows,
		SheetStatus:   statusRows,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}
