package userapimodels

import (
	"net/mail"

	"github.com/pkg/errors"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type UserView struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	IsActive    bool   `json:"is_active"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		Role:        rec.Role.ToHuman(),
		Status:      rec.Status.ToHuman(),
		IsActive:    rec.IsActive,
	}
}

type CreateUserData struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
}

func (r CreateUserData) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first name and last name are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.Role == "" {
		return errors.New("role is required")
	}
	return nil
}

// SettingsUpdateData is a statically typed partial update: only non-nil
// fields are written.
type SettingsUpdateData struct {
	Language          *string `json:"language,omitempty"`
	GeneralReminders  *bool   `json:"general_reminders,omitempty"`
	PersonalReminders *bool   `json:"personal_reminders,omitempty"`
	CameraAccess      *bool   `json:"camera_access,omitempty"`
	LocationAccess    *bool   `json:"location_access,omitempty"`
	CookiesAccess     *bool   `json:"cookies_access,omitempty"`
}

func (r SettingsUpdateData) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Language != nil {
		updMap["language"] = *r.Language
	}
	if r.GeneralReminders != nil {
		updMap["general_reminders"] = *r.GeneralReminders
	}
	if r.PersonalReminders != nil {
		updMap["personal_reminders"] = *r.PersonalReminders
	}
	if r.CameraAccess != nil {
		updMap["camera_access"] = *r.CameraAccess
	}
	if r.LocationAccess != nil {
		updMap["location_access"] = *r.LocationAccess
	}
	if r.CookiesAccess != nil {
		updMap["cookies_access"] = *r.CookiesAccess
	}
	return updMap
}

type ContactsUpdateData struct {
	PhoneNumber            *string `json:"phone_number,omitempty"`
	Email                  *string `json:"email,omitempty"`
	EmergencyContact       *string `json:"emergency_contact,omitempty"`
	EmergencyContactNumber *string `json:"emergency_contact_number,omitempty"`
}

func (r ContactsUpdateData) Validate() error {
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			return errors.New("email has an invalid format")
		}
	}
	return nil
}

func (r ContactsUpdateData) ToUpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.PhoneNumber != nil {
		updMap["phone_number"] = *r.PhoneNumber
	}
	if r.Email != nil {
		updMap["email"] = *r.Email
	}
	if r.EmergencyContact != nil {
		updMap["emergency_contact"] = *r.EmergencyContact
	}
	if r.EmergencyContactNumber != nil {
		updMap["emergency_contact_number"] = *r.EmergencyContactNumber
	}
	return updMap
}
