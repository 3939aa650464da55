package equipmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Equipment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Equipment, err error)
	GetByQRCode(qrCode string) (rec *dbmodels.Equipment, err error)
	Update(id string, updMap map[string]interface{}) error
	List(page, limit int) (list []dbmodels.Equipment, err error)
	ListCount() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Equipment) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Equipment, error) {
	rec := dbmodels.Equipment{}
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

func (i impl) GetByQRCode(qrCode string) (*dbmodels.Equipment, error) {
	rec := dbmodels.Equipment{}
	err := i.db.
		Where("qr_code = ?", qrCode).
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
		Model(&dbmodels.Equipment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(page, limit int) (list []dbmodels.Equipment, err error) {
	list = []dbmodels.Equipment{}
	offset := (page - 1) * limit
	err = i.db.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
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

func (i impl) ListCount() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Equipment{}).
		Count(&count).
		Error
	return count, err
}
