package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oshokin/alarm-stats/internal/domain/alarm"
)

// TestBuildActivationsXLSX renders a workbook and reads the cells back.
func TestBuildActivationsXLSX(t *testing.T) {
	t.Parallel()

	data, err := BuildActivationsXLSX(
		[]alarm.ActivationRecord{{AlarmID: 2, Station: "StationB", Label: "Low Level", Count: 5}},
		[]alarm.StationActivationCount{{Station: "StationB", Count: 5}},
		alarm.StatusSnapshot{ActiveAlarms: 1, Activations: 4, Pagings: 2},
	)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer func() {
		_ = f.Close()
	}()

	require.Equal(t, []string{SheetAlarms, SheetStations, SheetStatus}, f.GetSheetList())

	v, err := f.GetCellValue(SheetAlarms, "C2")
	require.NoError(t, err)
	require.Equal(t, "Low Level", v)

	v, err = f.GetCellValue(SheetStations, "B2")
	require.NoError(t, err)
	require.Equal(t, "5", v)

	v, err = f.GetCellValue(SheetStatus, "B3")
	require.NoError(t, err)
	require.Equal(t, "2", v)
}
