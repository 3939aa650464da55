package dbmodels

import (
	"time"

	"crewtime-backend/models"

	"gorm.io/gorm"
)

type FormTemplate struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	// Schema is the field layout rendered by the client, stored as raw JSON.
	Schema   string `gorm:"type:jsonb"`
	IsActive bool
}

type FormSubmission struct {
	BaseModel
	TemplateID  string            `gorm:"type:varchar(36);index:idx_form_submission_template"`
	Template    *FormTemplate     `gorm:"foreignKey:TemplateID"`
	UserID      string            `gorm:"type:varchar(36);index:idx_form_submission_user"`
	User        *User             `gorm:"foreignKey:UserID"`
	Status      models.FormStatus `gorm:"type:varchar(20);index"`
	Data        string            `gorm:"type:jsonb"`
	SubmittedAt *time.Time
	DeletedAt   gorm.DeletedAt
}

type FormApproval struct {
	BaseModel
	SubmissionID string            `gorm:"type:varchar(36);index:idx_form_approval_submission"`
	Submission   *FormSubmission   `gorm:"foreignKey:SubmissionID"`
	ApproverID   string            `gorm:"type:varchar(36)"`
	Approver     *User             `gorm:"foreignKey:ApproverID"`
	Status       models.FormStatus `gorm:"type:varchar(20)"`
	Comment      string
	DecidedAt    *time.Time
}
