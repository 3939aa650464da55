package formtemplatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FormTemplate) (id string, err error)
	GetByID(id string) (rec *dbmodels.FormTemplate, err error)
	Update(id string, updMap map[string]interface{}) error
	List(activeOnly bool) (list []dbmodels.FormTemplate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FormTemplate) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FormTemplate, error) {
	rec := dbmodels.FormTemplate{}
	err := i.db.
		Where("id = ?", id).
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
		Model(&dbmodels.FormTemplate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List(activeOnly bool) (list []dbmodels.FormTemplate, err error) {
	list = []dbmodels.FormTemplate{}
	tx := i.db.Order("name ASC")
	if activeOnly {
		tx = tx.Where("is_active = true")
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
