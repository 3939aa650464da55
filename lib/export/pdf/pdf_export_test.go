package pdfexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

func TestGenerateTimeSheetReport(t *testing.T) {
	user := dbmodels.User{FirstName: "John", LastName: "Smith"}
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	t.Run(`report renders with rows`, func(t *testing.T) {
		list := []dbmodels.TimeSheet{
			{
				StartTime: start,
				EndTime:   &end,
				Jobsite:   &dbmodels.Jobsite{Name: "Main St bridge"},
				CostCode:  &dbmodels.CostCode{Code: "CC-100"},
				Status:    models.TSStatusApproved,
			},
		}
		pdfFile, err := GenerateTimeSheetReport(user, list, "2026-03-01", "2026-03-07")
		require.Nil(t, err)
		require.NotEmpty(t, pdfFile)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})

	t.Run(`empty period still renders`, func(t *testing.T) {
		pdfFile, err := GenerateTimeSheetReport(user, nil, "", "")
		require.Nil(t, err)
		require.NotEmpty(t, pdfFile)
	})
}
