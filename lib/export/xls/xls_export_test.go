package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

func TestExportTimeSheetList(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8*time.Hour + 30*time.Minute)

	list := []dbmodels.TimeSheet{
		{
			UserID:        "user-1",
			User:          &dbmodels.User{FirstName: "John", LastName: "Smith"},
			StartTime:     start,
			EndTime:       &end,
			Jobsite:       &dbmodels.Jobsite{Name: "Main St bridge"},
			CostCode:      &dbmodels.CostCode{Code: "CC-100"},
			Status:        models.TSStatusApproved,
			StatusComment: "looks good",
		},
		{
			UserID:    "user-2",
			User:      &dbmodels.User{FirstName: "Jane", LastName: "Doe"},
			StartTime: start,
			Status:    models.TSStatusPending,
		},
	}

	buf, err := impl{}.ExportTimeSheetList(list)
	require.Nil(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timesheets")
	require.Nil(t, err)
	require.Equal(t, 3, len(rows))
	require.Equal(t, "Employee", rows[0][0])
	require.Equal(t, "Hours", rows[0][4])

	require.Equal(t, "John Smith", rows[1][0])
	require.Equal(t, "03/02/2026", rows[1][1])
	require.Equal(t, "08:00", rows[1][2])
	require.Equal(t, "16:30", rows[1][3])
	require.Equal(t, "8.5", rows[1][4])
	require.Equal(t, "Main St bridge", rows[1][5])
	require.Equal(t, "CC-100", rows[1][6])

	require.Equal(t, "Jane Doe", rows[2][0])
	// open entry has no end time or hours
	require.Equal(t, "", rows[2][3])
}

func TestExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportTimeSheetList(nil)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timesheets")
	require.Nil(t, err)
	require.Equal(t, 1, len(rows))
}
