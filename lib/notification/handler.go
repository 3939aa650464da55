package notificationhandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewtime-backend/db"
	notificationreadstore "crewtime-backend/lib/notification/read-store"
	notificationresponsestore "crewtime-backend/lib/notification/response-store"
	notificationstore "crewtime-backend/lib/notification/store"
	topicsubscriptionstore "crewtime-backend/lib/notification/topic-store"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	notificationapimodels "crewtime-backend/models/api/notification"
	dbmodels "crewtime-backend/models/db"
)

// DefaultURL is where a notification deep-links when the creator supplied none.
const DefaultURL = "/admins"

type Provider interface {
	Create(data notificationapimodels.CreateNotificationData) (id string, err error)
	CreateAndLink(data notificationapimodels.CreateNotificationData) (id string, err error)
	ListForUser(userID string, pagination apimodels.Pagination) ([]notificationapimodels.NotificationView, error)
	MarkRead(notificationID, userID string) error
	ResolveApprovals(topic models.NotificationTopic, referenceIDs []string, editorID string, response models.NotificationResponseValue) (resolved int, err error)
	Subscribe(userID string, topic models.NotificationTopic) error
	Unsubscribe(userID string, topic models.NotificationTopic) error
	Subscriptions(userID string) ([]string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		readStore:     notificationreadstore.NewInstance(db.DB),
		responseStore: notificationresponsestore.NewInstance(db.DB),
		topicStore:    topicsubscriptionstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:         notificationstore.NewInstance(tx),
		readStore:     notificationreadstore.NewInstance(tx),
		responseStore: notificationresponsestore.NewInstance(tx),
		topicStore:    topicsubscriptionstore.NewInstance(tx),
	}
}

type impl struct {
	store         notificationstore.Provider
	readStore     notificationreadstore.Provider
	responseStore notificationresponsestore.Provider
	topicStore    topicsubscriptionstore.Provider
}

func (i impl) getLogger(topic models.NotificationTopic, referenceID string) *log.Entry {
	return log.
		WithField("topic", string(topic)).
		WithField("reference_id", referenceID)
}

func (i impl) Create(data notificationapimodels.CreateNotificationData) (id string, err error) {
	now := time.Now()
	rec := dbmodels.Notification{
		Topic:        data.Topic,
		ReferenceID:  data.ReferenceID,
		Title:        data.Title,
		Body:         data.Body,
		URL:          data.URL,
		PushedAt:     &now,
		PushAttempts: 1,
	}
	if rec.URL == "" {
		rec.URL = DefaultURL
	}
	return i.store.Create(rec)
}

// CreateAndLink inserts the notification and then rewrites its url to
// carry its own id. The id does not exist before the insert, so the
// second update is unavoidable.
func (i impl) CreateAndLink(data notificationapimodels.CreateNotificationData) (id string, err error) {
	id, err = i.Create(data)
	if err != nil {
		return "", err
	}
	url := data.URL
	if url == "" {
		url = DefaultURL
	}
	linked := LinkURL(url, id)
	err = i.store.Update(id, map[string]interface{}{"url": linked})
	if err != nil {
		return "", errors.Wrap(err, "failed to link notification url")
	}
	return id, nil
}

// LinkURL appends notificationId=<id> with ? or & depending on whether the
// url already carries a query string.
func LinkURL(url, id string) string {
	separator := "?"
	if strings.Contains(url, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%snotificationId=%s", url, separator, id)
}

func (i impl) ListForUser(userID string, pagination apimodels.Pagination) ([]notificationapimodels.NotificationView, error) {
	subs, err := i.topicStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	topics := make([]models.NotificationTopic, 0, len(subs))
	for _, sub := range subs {
		topics = append(topics, sub.Topic)
	}
	page, limit := pagination.GetPage()
	recList, err := i.store.ListByTopics(topics, page, limit)
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(notificationID, userID string) error {
	_, err := i.readStore.Create(dbmodels.NotificationRead{
		NotificationID: notificationID,
		UserID:         userID,
		ReadAt:         time.Now(),
	})
	return err
}

// ResolveApprovals records a read and a response for every still-unresolved
// notification on the topic referencing one of the given ids. Rows resolved
// by a concurrent caller are skipped.
func (i impl) ResolveApprovals(topic models.NotificationTopic, referenceIDs []string, editorID string, response models.NotificationResponseValue) (resolved int, err error) {
	pending, err := i.store.ListUnresolved(topic, referenceIDs)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	for _, rec := range pending {
		_, err = i.responseStore.Create(dbmodels.NotificationResponse{
			NotificationID: rec.ID,
			UserID:         editorID,
			Response:       response,
			RespondedAt:    now,
		})
		if err != nil {
			if errors.Is(err, notificationresponsestore.ErrAlreadyResolved) {
				i.getLogger(topic, rec.ReferenceID).Debug("notification resolved concurrently, skipping")
				continue
			}
			return resolved, err
		}
		_, err = i.readStore.Create(dbmodels.NotificationRead{
			NotificationID: rec.ID,
			UserID:         editorID,
			ReadAt:         now,
		})
		if err != nil {
			return resolved, err
		}
		resolved++
	}
	return resolved, nil
}

func (i impl) Subscribe(userID string, topic models.NotificationTopic) error {
	existing, err := i.topicStore.Find(userID, topic)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = i.topicStore.Create(dbmodels.TopicSubscription{
		UserID: userID,
		Topic:  topic,
	})
	return err
}

func (i impl) Unsubscribe(userID string, topic models.NotificationTopic) error {
	return i.topicStore.Delete(userID, topic)
}

func (i impl) Subscriptions(userID string) ([]string, error) {
	subs, err := i.topicStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(subs))
	for _, sub := range subs {
		topics = append(topics, string(sub.Topic))
	}
	return topics, nil
}
