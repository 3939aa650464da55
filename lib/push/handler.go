package pushhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewtime-backend/config"
	"crewtime-backend/db"
	notificationhandler "crewtime-backend/lib/notification"
	notificationstore "crewtime-backend/lib/notification/store"
	topicsubscriptionstore "crewtime-backend/lib/notification/topic-store"
	devicetokenstore "crewtime-backend/lib/push/token-store"
	"crewtime-backend/lib/smtp"
	usersstore "crewtime-backend/lib/users/store"
	"crewtime-backend/models"
	notificationapimodels "crewtime-backend/models/api/notification"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	// ReplaceToken swaps every device token the user has for the new one.
	ReplaceToken(userID, token, platform string) error
	// Notify persists a linked notification for the event and delivers it
	// to every enabled subscriber of the topic.
	Notify(msg models.PushMessage, referenceID, url string)
	// Deliver fans an already stored notification out to the topic
	// subscribers and reports whether every delivery succeeded.
	Deliver(notificationID string, topic models.NotificationTopic, title, body string) bool
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		tokenStore: devicetokenstore.NewInstance(db.DB),
		topicStore: topicsubscriptionstore.NewInstance(db.DB),
		userStore:  usersstore.NewInstance(db.DB),
		store:      notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	tokenStore devicetokenstore.Provider
	topicStore topicsubscriptionstore.Provider
	userStore  usersstore.Provider
	store      notificationstore.Provider
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) ReplaceToken(userID, token, platform string) error {
	logger := i.getLogger(userID)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := devicetokenstore.NewInstance(tx)
		if err := store.DeleteByUser(userID); err != nil {
			return err
		}
		_, err := store.Create(dbmodels.DeviceToken{
			UserID:   userID,
			Token:    token,
			Platform: platform,
		})
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to replace device token")
		return err
	}
	logger.Info("device token replaced")
	return nil
}

func (i impl) Notify(msg models.PushMessage, referenceID, url string) {
	logger := log.
		WithField("topic", string(msg.Topic)).
		WithField("reference_id", referenceID)
	id, err := notificationhandler.Instance.CreateAndLink(notificationapimodels.CreateNotificationData{
		Topic:       msg.Topic,
		ReferenceID: referenceID,
		Title:       msg.Title,
		Body:        msg.Msg,
		URL:         url,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create notification")
		return
	}
	if !i.Deliver(id, msg.Topic, msg.Title, msg.Msg) {
		// leave the row for the retry worker
		err = i.store.Update(id, map[string]interface{}{"pushed_at": nil})
		if err != nil {
			logger.WithError(err).Error("failed to mark notification for retry")
		}
	}
}

func (i impl) Deliver(notificationID string, topic models.NotificationTopic, title, body string) bool {
	logger := log.
		WithField("topic", string(topic)).
		WithField("notification_id", notificationID)
	subs, err := i.topicStore.ListSubscribers(topic)
	if err != nil {
		logger.WithError(err).Error("failed to list topic subscribers")
		return false
	}
	delivered := true
	for _, sub := range subs {
		user, err := i.userStore.GetByID(sub.UserID)
		if err != nil {
			logger.WithError(err).Error("failed to load subscriber")
			delivered = false
			continue
		}
		if user == nil || !user.PushEnabled {
			continue
		}
		err = smtp.Instance.SendEMail(config.Conf.Smtp.SenderEmail, user.Email, body, title)
		if err != nil {
			delivered = false
		}
	}
	return delivered
}
