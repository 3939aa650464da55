package dbmodels

import (
	"fmt"
	"time"

	"crewtime-backend/models"
)

type User struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	IsActive    bool
	Role        models.UserRole   `gorm:"type:varchar(50)"`
	Status      models.UserStatus `gorm:"type:varchar(50)"`
	CrewID      *string           `gorm:"type:varchar(36)"`
	// feature view flags carried in the JWT
	TruckView    bool
	TascoView    bool
	MechanicView bool
	LaborView    bool
	PushEnabled  bool
	LastLogin    time.Time
	Settings     *UserSettings `gorm:"foreignKey:UserID"`
	Contacts     *Contacts     `gorm:"foreignKey:UserID"`
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

type UserSettings struct {
	BaseModel
	UserID            string `gorm:"type:varchar(36);uniqueIndex"`
	Language          string `gorm:"type:varchar(10)"`
	GeneralReminders  bool
	PersonalReminders bool
	CameraAccess      bool
	LocationAccess    bool
	CookiesAccess     bool
}

type Contacts struct {
	BaseModel
	UserID                 string `gorm:"type:varchar(36);uniqueIndex"`
	PhoneNumber            string `gorm:"type:varchar(15)"`
	Email                  string `gorm:"type:varchar(255)"`
	EmergencyContact       string `gorm:"type:varchar(255)"`
	EmergencyContactNumber string `gorm:"type:varchar(15)"`
}
