package topicsubscriptionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Find(userID string, topic models.NotificationTopic) (rec *dbmodels.TopicSubscription, err error)
	Create(rec dbmodels.TopicSubscription) (id string, err error)
	Delete(userID string, topic models.NotificationTopic) error
	ListByUser(userID string) (list []dbmodels.TopicSubscription, err error)
	ListSubscribers(topic models.NotificationTopic) (list []dbmodels.TopicSubscription, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Find returns the first matching row; subscriptions are not unique at the
// storage level, callers check before creating.
func (i impl) Find(userID string, topic models.NotificationTopic) (*dbmodels.TopicSubscription, error) {
	rec := dbmodels.TopicSubscription{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("topic = ?", topic).
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

func (i impl) Create(rec dbmodels.TopicSubscription) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Delete removes every row for the pair, not just one.
func (i impl) Delete(userID string, topic models.NotificationTopic) error {
	err := i.db.
		Where("user_id = ?", userID).
		Where("topic = ?", topic).
		Delete(&dbmodels.TopicSubscription{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.TopicSubscription, err error) {
	list = []dbmodels.TopicSubscription{}
	err = i.db.
		Where("user_id = ?", userID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListSubscribers(topic models.NotificationTopic) (list []dbmodels.TopicSubscription, err error) {
	list = []dbmodels.TopicSubscription{}
	err = i.db.
		Where("topic = ?", topic).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
