package dbmodels

import (
	"time"

	"crewtime-backend/models"
)

type TimeSheet struct {
	BaseModel
	UserID        string                 `gorm:"type:varchar(36);index:idx_timesheet_user"`
	User          *User                  `gorm:"foreignKey:UserID"`
	StartTime     time.Time
	EndTime       *time.Time
	JobsiteID     string                 `gorm:"type:varchar(36)"`
	Jobsite       *Jobsite               `gorm:"foreignKey:JobsiteID"`
	CostCodeID    string                 `gorm:"type:varchar(36)"`
	CostCode      *CostCode              `gorm:"foreignKey:CostCodeID"`
	Status        models.TimeSheetStatus `gorm:"type:varchar(20);index"`
	StatusComment string
	EditedByID    string                 `gorm:"type:varchar(36)"`
}
