package timesheetapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateTimeSheetDataValidate(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	t.Run(`valid data passes`, func(t *testing.T) {
		data := CreateTimeSheetData{StartTime: start, EndTime: &end, JobsiteID: "js-1"}
		require.Nil(t, data.Validate())
	})

	t.Run(`open entry without end time passes`, func(t *testing.T) {
		data := CreateTimeSheetData{StartTime: start, JobsiteID: "js-1"}
		require.Nil(t, data.Validate())
	})

	t.Run(`start time required`, func(t *testing.T) {
		data := CreateTimeSheetData{JobsiteID: "js-1"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`end before start rejected`, func(t *testing.T) {
		before := start.Add(-time.Hour)
		data := CreateTimeSheetData{StartTime: start, EndTime: &before, JobsiteID: "js-1"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`jobsite required`, func(t *testing.T) {
		data := CreateTimeSheetData{StartTime: start}
		require.NotNil(t, data.Validate())
	})
}

func TestTimeSheetEditDataValidate(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	t.Run(`edit with a comment passes`, func(t *testing.T) {
		data := TimeSheetEditData{EndTime: &end, StatusComment: "forgot to clock out"}
		require.Nil(t, data.Validate())
	})

	t.Run(`comment required`, func(t *testing.T) {
		data := TimeSheetEditData{EndTime: &end}
		require.NotNil(t, data.Validate())
	})

	t.Run(`empty edit rejected`, func(t *testing.T) {
		data := TimeSheetEditData{StatusComment: "nothing changed"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`end before start rejected`, func(t *testing.T) {
		before := start.Add(-time.Hour)
		data := TimeSheetEditData{StartTime: &start, EndTime: &before, StatusComment: "fix"}
		require.NotNil(t, data.Validate())
	})

	t.Run(`upd map carries only the set fields`, func(t *testing.T) {
		jobsiteID := "js-2"
		data := TimeSheetEditData{JobsiteID: &jobsiteID, StatusComment: "moved crew"}
		updMap := data.ToUpdMap()
		require.Equal(t, "js-2", updMap["jobsite_id"])
		require.Equal(t, "moved crew", updMap["status_comment"])
		_, hasStart := updMap["start_time"]
		require.Equal(t, false, hasStart)
		_, hasEnd := updMap["end_time"]
		require.Equal(t, false, hasEnd)
	})
}

func TestApproveDataValidate(t *testing.T) {
	t.Run(`valid data passes`, func(t *testing.T) {
		data := ApproveData{UserID: "user-1", TimesheetIDs: []string{"ts-1"}}
		require.Nil(t, data.Validate())
	})

	t.Run(`user id required`, func(t *testing.T) {
		data := ApproveData{TimesheetIDs: []string{"ts-1"}}
		require.NotNil(t, data.Validate())
	})

	t.Run(`ids required`, func(t *testing.T) {
		data := ApproveData{UserID: "user-1"}
		require.NotNil(t, data.Validate())
	})
}

func TestSubmitDataValidate(t *testing.T) {
	t.Run(`ids required`, func(t *testing.T) {
		require.NotNil(t, SubmitData{}.Validate())
		require.Nil(t, SubmitData{TimesheetIDs: []string{"ts-1"}}.Validate())
	})
}
