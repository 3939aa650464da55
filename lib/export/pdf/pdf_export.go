package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "crewtime-backend/models/db"
)

// GenerateTimeSheetReport renders a per-employee timesheet report for the
// given period as a PDF table.
func GenerateTimeSheetReport(user dbmodels.User, list []dbmodels.TimeSheet, from, to string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTimeSheetReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Timesheet report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Employee: %s", user.GetFullName()), "", 1, "L", false, 0, "")
	if from != "" || to != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Period: %s - %s", from, to), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	headers := []string{"Date", "Start", "End", "Hours", "Jobsite", "Cost code", "Status"}
	widths := []float64{25, 18, 18, 16, 45, 35, 30}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for idx, header := range headers {
		pdf.CellFormat(widths[idx], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var total float64
	for _, item := range list {
		endStr := ""
		hoursStr := ""
		if item.EndTime != nil {
			endStr = item.EndTime.Format("15:04")
			hours := item.EndTime.Sub(item.StartTime).Round(time.Minute).Hours()
			hoursStr = fmt.Sprintf("%.2f", hours)
			total += hours
		}
		jobsite := ""
		if item.Jobsite != nil {
			jobsite = item.Jobsite.Name
		}
		costCode := ""
		if item.CostCode != nil {
			costCode = item.CostCode.Code
		}
		cells := []string{
			item.StartTime.Format("01/02/2006"),
			item.StartTime.Format("15:04"),
			endStr,
			hoursStr,
			jobsite,
			costCode,
			item.Status.ToHuman(),
		}
		for idx, value := range cells {
			pdf.CellFormat(widths[idx], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, fmt.Sprintf("%.2f", total), "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
