package formapimodels

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type TemplateView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema"`
	IsActive    bool            `json:"is_active"`
}

func TemplateConvert(rec dbmodels.FormTemplate) TemplateView {
	return TemplateView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Schema:      json.RawMessage(rec.Schema),
		IsActive:    rec.IsActive,
	}
}

type TemplateData struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`
	IsActive    bool            `json:"is_active"`
}

func (r TemplateData) Validate() error {
	if r.Name == "" {
		return errors.New("template name is required")
	}
	if len(r.Schema) == 0 || !json.Valid(r.Schema) {
		return errors.New("template schema must be valid json")
	}
	return nil
}

type SubmissionView struct {
	ID           string          `json:"id"`
	TemplateID   string          `json:"template_id"`
	TemplateName string          `json:"template_name,omitempty"`
	UserID       string          `json:"user_id"`
	UserName     string          `json:"user_name,omitempty"`
	Status       string          `json:"status"`
	Data         json.RawMessage `json:"data"`
	SubmittedAt  *time.Time      `json:"submitted_at,omitempty"`
}

func SubmissionConvert(rec dbmodels.FormSubmission) SubmissionView {
	view := SubmissionView{
		ID:          rec.ID,
		TemplateID:  rec.TemplateID,
		UserID:      rec.UserID,
		Status:      rec.Status.ToHuman(),
		Data:        json.RawMessage(rec.Data),
		SubmittedAt: rec.SubmittedAt,
	}
	if rec.Template != nil {
		view.TemplateName = rec.Template.Name
	}
	if rec.User != nil {
		view.UserName = rec.User.GetFullName()
	}
	return view
}

type SubmissionData struct {
	TemplateID string          `json:"template_id"`
	Data       json.RawMessage `json:"data"`
}

func (r SubmissionData) Validate() error {
	if r.TemplateID == "" {
		return errors.New("template id is required")
	}
	if len(r.Data) == 0 || !json.Valid(r.Data) {
		return errors.New("submission data must be valid json")
	}
	return nil
}

type ApprovalData struct {
	SubmissionID string `json:"submission_id"`
	Approved     bool   `json:"approved"`
	Comment      string `json:"comment"`
}

func (r ApprovalData) Validate() error {
	if r.SubmissionID == "" {
		return errors.New("submission id is required")
	}
	if !r.Approved && r.Comment == "" {
		return errors.New("a comment is required when denying a form")
	}
	return nil
}

func (r ApprovalData) Status() models.FormStatus {
	if r.Approved {
		return models.FormStatusApproved
	}
	return models.FormStatusDenied
}
