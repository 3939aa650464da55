package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	Update(id string, updMap map[string]interface{}) error
	ListUnresolved(topic models.NotificationTopic, referenceIDs []string) (list []dbmodels.Notification, err error)
	ListUnpushed(maxAttempts int) (list []dbmodels.Notification, err error)
	ListByTopics(topics []models.NotificationTopic, page, limit int) (list []dbmodels.Notification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Omit("Reads").
		Omit("Response").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Where("id = ?", id).
		Preload("Response").
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
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ListUnresolved returns notifications on the topic referencing one of the
// given ids that have no response row yet.
func (i impl) ListUnresolved(topic models.NotificationTopic, referenceIDs []string) (list []dbmodels.Notification, err error) {
	if len(referenceIDs) == 0 {
		return []dbmodels.Notification{}, nil
	}
	list = []dbmodels.Notification{}
	err = i.db.
		Where("topic = ?", topic).
		Where("reference_id IN ?", referenceIDs).
		Where("NOT EXISTS (SELECT 1 FROM notification_responses r WHERE r.notification_id = notifications.id)").
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

func (i impl) ListUnpushed(maxAttempts int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("pushed_at IS NULL").
		Where("push_attempts < ?", maxAttempts).
		Order("created_at ASC").
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

func (i impl) ListByTopics(topics []models.NotificationTopic, page, limit int) (list []dbmodels.Notification, err error) {
	if len(topics) == 0 {
		return []dbmodels.Notification{}, nil
	}
	list = []dbmodels.Notification{}
	offset := (page - 1) * limit
	err = i.db.
		Where("topic IN ?", topics).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("Response").
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
