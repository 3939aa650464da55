package timesheetapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "crewtime-backend/models/db"
)

type TimeSheetView struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Jobsite       string     `json:"jobsite,omitempty"`
	CostCode      string     `json:"cost_code,omitempty"`
	Status        string     `json:"status"`
	StatusComment string     `json:"status_comment,omitempty"`
}

func TimeSheetConvert(rec dbmodels.TimeSheet) TimeSheetView {
	view := TimeSheetView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		StartTime:     rec.StartTime,
		EndTime:       rec.EndTime,
		Status:        rec.Status.ToHuman(),
		StatusComment: rec.StatusComment,
	}
	if rec.User != nil {
		view.UserName = rec.User.GetFullName()
	}
	if rec.Jobsite != nil {
		view.Jobsite = rec.Jobsite.Name
	}
	if rec.CostCode != nil {
		view.CostCode = rec.CostCode.Code
	}
	return view
}

type CreateTimeSheetData struct {
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	JobsiteID  string     `json:"jobsite_id"`
	CostCodeID string     `json:"cost_code_id"`
}

func (r CreateTimeSheetData) Validate() error {
	if r.StartTime.IsZero() {
		return errors.New("start time is required")
	}
	if r.EndTime != nil && r.EndTime.Before(r.StartTime) {
		return errors.New("end time must not precede start time")
	}
	if r.JobsiteID == "" {
		return errors.New("jobsite id is required")
	}
	return nil
}

type SubmitData struct {
	TimesheetIDs []string `json:"timesheet_ids"`
}

func (r SubmitData) Validate() error {
	if len(r.TimesheetIDs) == 0 {
		return errors.New("at least one timesheet id is required")
	}
	return nil
}

// TimeSheetEditData is a statically typed partial update for one row.
type TimeSheetEditData struct {
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	JobsiteID     *string    `json:"jobsite_id,omitempty"`
	CostCodeID    *string    `json:"cost_code_id,omitempty"`
	StatusComment string     `json:"status_comment"`
}

func (r TimeSheetEditData) Validate() error {
	if r.StartTime == nil && r.EndTime == nil && r.JobsiteID == nil && r.CostCodeID == nil {
		return errors.New("nothing to update")
	}
	if r.StatusComment == "" {
		return errors.New("an audit comment is required")
	}
	if r.StartTime != nil && r.EndTime != nil && r.EndTime.Before(*r.StartTime) {
		return errors.New("end time must not precede start time")
	}
	return nil
}

func (r TimeSheetEditData) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{
		"status_comment": r.StatusComment,
	}
	if r.StartTime != nil {
		updMap["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		updMap["end_time"] = *r.EndTime
	}
	if r.JobsiteID != nil {
		updMap["jobsite_id"] = *r.JobsiteID
	}
	if r.CostCodeID != nil {
		updMap["cost_code_id"] = *r.CostCodeID
	}
	return updMap
}

type ApproveData struct {
	UserID        string   `json:"user_id"`
	TimesheetIDs  []string `json:"timesheet_ids"`
	StatusComment string   `json:"status_comment"`
}

func (r ApproveData) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if len(r.TimesheetIDs) == 0 {
		return errors.New("at least one timesheet id is required")
	}
	return nil
}

type ApproveResult struct {
	Approved              int64 `json:"approved"`
	NotificationsResolved int   `json:"notifications_resolved"`
}
