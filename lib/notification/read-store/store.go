package notificationreadstore

import (
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.NotificationRead) (id string, err error)
	ListByNotification(notificationID string) (list []dbmodels.NotificationRead, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.NotificationRead) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByNotification(notificationID string) (list []dbmodels.NotificationRead, err error) {
	list = []dbmodels.NotificationRead{}
	err = i.db.
		Where("notification_id = ?", notificationID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
