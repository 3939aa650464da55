package notificationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	notificationresponsestore "crewtime-backend/lib/notification/response-store"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	notificationapimodels "crewtime-backend/models/api/notification"
	dbmodels "crewtime-backend/models/db"
)

type fakeNotificationStore struct {
	recs    map[string]dbmodels.Notification
	updates map[string]map[string]interface{}
	nextID  int
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{
		recs:    map[string]dbmodels.Notification{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeNotificationStore) Create(rec dbmodels.Notification) (string, error) {
	f.nextID++
	rec.ID = "ntf-" + string(rune('0'+f.nextID))
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeNotificationStore) GetByID(id string) (*dbmodels.Notification, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeNotificationStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeNotificationStore) ListUnresolved(topic models.NotificationTopic, referenceIDs []string) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	for _, rec := range f.recs {
		if rec.Topic != topic {
			continue
		}
		for _, refID := range referenceIDs {
			if rec.ReferenceID == refID {
				list = append(list, rec)
			}
		}
	}
	return list, nil
}

func (f *fakeNotificationStore) ListUnpushed(maxAttempts int) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationStore) ListByTopics(topics []models.NotificationTopic, page, limit int) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	for _, rec := range f.recs {
		for _, topic := range topics {
			if rec.Topic == topic {
				list = append(list, rec)
			}
		}
	}
	return list, nil
}

type fakeReadStore struct {
	created []dbmodels.NotificationRead
}

func (f *fakeReadStore) Create(rec dbmodels.NotificationRead) (string, error) {
	f.created = append(f.created, rec)
	return "read-id", nil
}

func (f *fakeReadStore) ListByNotification(notificationID string) ([]dbmodels.NotificationRead, error) {
	return f.created, nil
}

type fakeResponseStore struct {
	created  []dbmodels.NotificationResponse
	resolved map[string]bool
}

func (f *fakeResponseStore) Create(rec dbmodels.NotificationResponse) (string, error) {
	if f.resolved[rec.NotificationID] {
		return "", notificationresponsestore.ErrAlreadyResolved
	}
	f.created = append(f.created, rec)
	return "resp-id", nil
}

func (f *fakeResponseStore) GetByNotification(notificationID string) (*dbmodels.NotificationResponse, error) {
	return nil, nil
}

type fakeTopicStore struct {
	subs    []dbmodels.TopicSubscription
	created []dbmodels.TopicSubscription
}

func (f *fakeTopicStore) Find(userID string, topic models.NotificationTopic) (*dbmodels.TopicSubscription, error) {
	for _, sub := range f.subs {
		if sub.UserID == userID && sub.Topic == topic {
			return &sub, nil
		}
	}
	return nil, nil
}

func (f *fakeTopicStore) Create(rec dbmodels.TopicSubscription) (string, error) {
	f.subs = append(f.subs, rec)
	f.created = append(f.created, rec)
	return "sub-id", nil
}

func (f *fakeTopicStore) Delete(userID string, topic models.NotificationTopic) error {
	kept := f.subs[:0]
	for _, sub := range f.subs {
		if sub.UserID != userID || sub.Topic != topic {
			kept = append(kept, sub)
		}
	}
	f.subs = kept
	return nil
}

func (f *fakeTopicStore) ListByUser(userID string) ([]dbmodels.TopicSubscription, error) {
	list := []dbmodels.TopicSubscription{}
	for _, sub := range f.subs {
		if sub.UserID == userID {
			list = append(list, sub)
		}
	}
	return list, nil
}

func (f *fakeTopicStore) ListSubscribers(topic models.NotificationTopic) ([]dbmodels.TopicSubscription, error) {
	list := []dbmodels.TopicSubscription{}
	for _, sub := range f.subs {
		if sub.Topic == topic {
			list = append(list, sub)
		}
	}
	return list, nil
}

func newTestHandler() (impl, *fakeNotificationStore, *fakeReadStore, *fakeResponseStore, *fakeTopicStore) {
	store := newFakeNotificationStore()
	readStore := &fakeReadStore{}
	responseStore := &fakeResponseStore{resolved: map[string]bool{}}
	topicStore := &fakeTopicStore{}
	h := impl{
		store:         store,
		readStore:     readStore,
		responseStore: responseStore,
		topicStore:    topicStore,
	}
	return h, store, readStore, responseStore, topicStore
}

func TestLinkURL(t *testing.T) {
	t.Run(`plain url gets a query string`, func(t *testing.T) {
		linked := LinkURL("/timesheets", "123")
		require.Equal(t, "/timesheets?notificationId=123", linked)
	})

	t.Run(`url with a query string gets appended`, func(t *testing.T) {
		linked := LinkURL("/timesheets?tab=pending", "123")
		require.Equal(t, "/timesheets?tab=pending&notificationId=123", linked)
	})
}

func TestCreateAndLink(t *testing.T) {
	t.Run(`url carries the new notification id`, func(t *testing.T) {
		h, store, _, _, _ := newTestHandler()
		id, err := h.CreateAndLink(notificationapimodels.CreateNotificationData{
			Topic:       models.TopicTimecardSubmission,
			ReferenceID: "ts-1",
			Title:       "Timecard submitted",
			Body:        "John Smith submitted a timecard for approval.",
			URL:         "/timesheets",
		})
		require.Nil(t, err)
		require.NotEmpty(t, id)
		updMap, ok := store.updates[id]
		require.Equal(t, true, ok)
		require.Equal(t, "/timesheets?notificationId="+id, updMap["url"])
	})

	t.Run(`empty url falls back to the default`, func(t *testing.T) {
		h, store, _, _, _ := newTestHandler()
		id, err := h.CreateAndLink(notificationapimodels.CreateNotificationData{
			Topic:       models.TopicTimecardSubmission,
			ReferenceID: "ts-1",
			Title:       "Timecard submitted",
			Body:        "body",
		})
		require.Nil(t, err)
		require.Equal(t, DefaultURL+"?notificationId="+id, store.updates[id]["url"])
	})
}

func TestResolveApprovals(t *testing.T) {
	t.Run(`resolves unresolved rows with editor attribution`, func(t *testing.T) {
		h, store, readStore, responseStore, _ := newTestHandler()
		id1, err := store.Create(dbmodels.Notification{Topic: models.TopicTimecardSubmission, ReferenceID: "ts-1"})
		require.Nil(t, err)
		id2, err := store.Create(dbmodels.Notification{Topic: models.TopicTimecardSubmission, ReferenceID: "ts-2"})
		require.Nil(t, err)

		resolved, err := h.ResolveApprovals(models.TopicTimecardSubmission, []string{"ts-1", "ts-2"}, "manager-1", models.NotificationResponseApproved)
		require.Nil(t, err)
		require.Equal(t, 2, resolved)
		require.Equal(t, 2, len(responseStore.created))
		for _, resp := range responseStore.created {
			require.Equal(t, "manager-1", resp.UserID)
			require.Equal(t, models.NotificationResponseApproved, resp.Response)
		}
		require.Equal(t, 2, len(readStore.created))
		gotIDs := map[string]bool{}
		for _, read := range readStore.created {
			gotIDs[read.NotificationID] = true
			require.Equal(t, "manager-1", read.UserID)
		}
		require.Equal(t, true, gotIDs[id1])
		require.Equal(t, true, gotIDs[id2])
	})

	t.Run(`rows resolved concurrently are skipped`, func(t *testing.T) {
		h, store, readStore, responseStore, _ := newTestHandler()
		id1, err := store.Create(dbmodels.Notification{Topic: models.TopicTimecardSubmission, ReferenceID: "ts-1"})
		require.Nil(t, err)
		_, err = store.Create(dbmodels.Notification{Topic: models.TopicTimecardSubmission, ReferenceID: "ts-2"})
		require.Nil(t, err)
		responseStore.resolved[id1] = true

		resolved, err := h.ResolveApprovals(models.TopicTimecardSubmission, []string{"ts-1", "ts-2"}, "manager-1", models.NotificationResponseRejected)
		require.Nil(t, err)
		require.Equal(t, 1, resolved)
		require.Equal(t, 1, len(responseStore.created))
		require.Equal(t, 1, len(readStore.created))
	})

	t.Run(`unrelated topics are untouched`, func(t *testing.T) {
		h, store, _, responseStore, _ := newTestHandler()
		_, err := store.Create(dbmodels.Notification{Topic: models.TopicFormSubmission, ReferenceID: "ts-1"})
		require.Nil(t, err)

		resolved, err := h.ResolveApprovals(models.TopicTimecardSubmission, []string{"ts-1"}, "manager-1", models.NotificationResponseApproved)
		require.Nil(t, err)
		require.Equal(t, 0, resolved)
		require.Equal(t, 0, len(responseStore.created))
	})
}

func TestSubscriptions(t *testing.T) {
	t.Run(`subscribe is idempotent`, func(t *testing.T) {
		h, _, _, _, topicStore := newTestHandler()
		err := h.Subscribe("user-1", models.TopicTimecardSubmission)
		require.Nil(t, err)
		err = h.Subscribe("user-1", models.TopicTimecardSubmission)
		require.Nil(t, err)
		require.Equal(t, 1, len(topicStore.created))
	})

	t.Run(`unsubscribe removes the topic`, func(t *testing.T) {
		h, _, _, _, _ := newTestHandler()
		err := h.Subscribe("user-1", models.TopicTimecardSubmission)
		require.Nil(t, err)
		err = h.Subscribe("user-1", models.TopicFormSubmission)
		require.Nil(t, err)
		err = h.Unsubscribe("user-1", models.TopicTimecardSubmission)
		require.Nil(t, err)
		topics, err := h.Subscriptions("user-1")
		require.Nil(t, err)
		require.Equal(t, []string{string(models.TopicFormSubmission)}, topics)
	})
}

func TestListForUser(t *testing.T) {
	t.Run(`only subscribed topics are listed`, func(t *testing.T) {
		h, store, _, _, _ := newTestHandler()
		err := h.Subscribe("user-1", models.TopicTimecardSubmission)
		require.Nil(t, err)
		_, err = store.Create(dbmodels.Notification{Topic: models.TopicTimecardSubmission, ReferenceID: "ts-1", Title: "Timecard submitted"})
		require.Nil(t, err)
		_, err = store.Create(dbmodels.Notification{Topic: models.TopicFormSubmission, ReferenceID: "fs-1", Title: "Form submitted"})
		require.Nil(t, err)

		list, err := h.ListForUser("user-1", apimodels.Pagination{})
		require.Nil(t, err)
		require.Equal(t, 1, len(list))
		require.Equal(t, "Timecard submitted", list[0].Title)
	})
}
