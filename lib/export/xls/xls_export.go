package xlsexport

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	ExportTimeSheetList(list []dbmodels.TimeSheet) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var timesheetHeaders = []string{"Employee", "Date", "Start", "End", "Hours", "Jobsite", "Cost code", "Status", "Comment"}

func (i impl) ExportTimeSheetList(list []dbmodels.TimeSheet) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, timesheetHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeTimeSheetData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Timesheets")
	return f.WriteToBuffer()
}

func writeTimeSheetData(f *excelize.File, sheet string, list []dbmodels.TimeSheet, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(timesheetHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Employee"
		col := 1
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Date"
		col++
		if err := writeColumn(f, sheet, col, row, item.StartTime.Format("01/02/2006")); err != nil {
			return row, err
		}

		// "Start"
		col++
		if err := writeColumn(f, sheet, col, row, item.StartTime.Format("15:04")); err != nil {
			return row, err
		}

		// "End"
		col++
		if item.EndTime != nil {
			if err := writeColumn(f, sheet, col, row, item.EndTime.Format("15:04")); err != nil {
				return row, err
			}
		}

		// "Hours"
		col++
		if item.EndTime != nil {
			hours := item.EndTime.Sub(item.StartTime).Round(time.Minute).Hours()
			if err := writeColumn(f, sheet, col, row, hours); err != nil {
				return row, err
			}
		}

		// "Jobsite"
		col++
		if item.Jobsite != nil {
			if err := writeColumn(f, sheet, col, row, item.Jobsite.Name); err != nil {
				return row, err
			}
		}

		// "Cost code"
		col++
		if item.CostCode != nil {
			if err := writeColumn(f, sheet, col, row, item.CostCode.Code); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Comment"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatusComment); err != nil {
			return row, err
		}
	}
	return row, nil
}
