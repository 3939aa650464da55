package devicetokenstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DeviceToken) (id string, err error)
	DeleteByUser(userID string) error
	ListByUser(userID string) (list []dbmodels.DeviceToken, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DeviceToken) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteByUser(userID string) error {
	err := i.db.
		Where("user_id = ?", userID).
		Delete(&dbmodels.DeviceToken{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.DeviceToken, err error) {
	list = []dbmodels.DeviceToken{}
	err = i.db.
		Where("user_id = ?", userID).
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
