package formsubmissionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FormSubmission) (id string, err error)
	GetByID(id string) (rec *dbmodels.FormSubmission, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByUser(userID string, page, limit int) (list []dbmodels.FormSubmission, err error)
	ListByStatus(status models.FormStatus, page, limit int) (list []dbmodels.FormSubmission, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FormSubmission) (id string, err error) {
	err = i.db.
		Omit("Template").
		Omit("User").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FormSubmission, error) {
	rec := dbmodels.FormSubmission{}
	err := i.db.
		Where("id = ?", id).
		Preload("Template").
		Preload("User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.FormSubmission{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.FormSubmission{}).
		Error
}

func (i impl) ListByUser(userID string, page, limit int) (list []dbmodels.FormSubmission, err error) {
	list = []dbmodels.FormSubmission{}
	offset := (page - 1) * limit
	err = i.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("Template").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListByStatus(status models.FormStatus, page, limit int) (list []dbmodels.FormSubmission, err error) {
	list = []dbmodels.FormSubmission{}
	offset := (page - 1) * limit
	err = i.db.
		Where("status = ?", status).
		Order("submitted_at ASC").
		Offset(offset).
		Limit(limit).
		Preload("Template").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
