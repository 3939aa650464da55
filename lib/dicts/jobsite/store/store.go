package jobsitestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Jobsite) (id string, err error)
	GetByID(id string) (rec *dbmodels.Jobsite, err error)
	GetByQRCode(qrCode string) (rec *dbmodels.Jobsite, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Jobsite, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Jobsite) (id string, err error) {
	err = i.db.
		Omit("CostCodes").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Jobsite, error) {
	rec := dbmodels.Jobsite{}
	err := i.db.
		Where("id = ?", id).
		Preload("CostCodes").
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

func (i impl) GetByQRCode(qrCode string) (*dbmodels.Jobsite, error) {
	rec := dbmodels.Jobsite{}
	err := i.db.
		Where("qr_code = ?", qrCode).
		Preload("CostCodes").
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
	err := i.db.
		Model(&dbmodels.Jobsite{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Jobsite{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() (list []dbmodels.Jobsite, err error) {
	list = []dbmodels.Jobsite{}
	err = i.db.
		Order("name ASC").
		Preload("CostCodes").
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
