package timesheethandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	pushhandler "crewtime-backend/lib/push"
	"crewtime-backend/models"
	timesheetapimodels "crewtime-backend/models/api/timesheet"
	dbmodels "crewtime-backend/models/db"
)

type fakeTimesheetStore struct {
	recs      map[string]dbmodels.TimeSheet
	updates   map[string]map[string]interface{}
	submitted []string
}

func newFakeTimesheetStore() *fakeTimesheetStore {
	return &fakeTimesheetStore{
		recs:    map[string]dbmodels.TimeSheet{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeTimesheetStore) Create(rec dbmodels.TimeSheet) (string, error) {
	rec.ID = "ts-created"
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeTimesheetStore) GetByID(id string) (*dbmodels.TimeSheet, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeTimesheetStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeTimesheetStore) BulkSetStatus(userID string, ids []string, status models.TimeSheetStatus, comment, editorID string) (int64, error) {
	return 0, nil
}

func (f *fakeTimesheetStore) SubmitDrafts(userID string, ids []string) (int64, error) {
	var affected int64
	for _, id := range ids {
		rec, ok := f.recs[id]
		if !ok || rec.UserID != userID {
			continue
		}
		if rec.Status != models.TSStatusDraft && rec.Status != models.TSStatusRejected {
			continue
		}
		rec.Status = models.TSStatusPending
		f.recs[id] = rec
		f.submitted = append(f.submitted, id)
		affected++
	}
	return affected, nil
}

func (f *fakeTimesheetStore) ListByUser(userID string, page, limit int) ([]dbmodels.TimeSheet, error) {
	return nil, nil
}

func (f *fakeTimesheetStore) ListCountByUser(userID string) (int64, error) {
	return 0, nil
}

func (f *fakeTimesheetStore) ListByStatus(status models.TimeSheetStatus, page, limit int) ([]dbmodels.TimeSheet, error) {
	return nil, nil
}

func (f *fakeTimesheetStore) ListForExport(userID string, from, to string) ([]dbmodels.TimeSheet, error) {
	return nil, nil
}

type fakeUserStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) { return "", nil }

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }

func (f *fakeUserStore) ExistByEmail(email string) (bool, error) { return false, nil }

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeUserStore) List(page, limit int) ([]dbmodels.User, error) { return nil, nil }

func (f *fakeUserStore) ListCount() (int64, error) { return 0, nil }

func (f *fakeUserStore) ListByRole(role string) ([]dbmodels.User, error) { return nil, nil }

type notifyCall struct {
	msg         models.PushMessage
	referenceID string
}

type fakePush struct {
	calls []notifyCall
}

func (f *fakePush) ReplaceToken(userID, token, platform string) error { return nil }

func (f *fakePush) Notify(msg models.PushMessage, referenceID, url string) {
	f.calls = append(f.calls, notifyCall{msg: msg, referenceID: referenceID})
}

func (f *fakePush) Deliver(notificationID string, topic models.NotificationTopic, title, body string) bool {
	return true
}

func TestSubmit(t *testing.T) {
	newUser := func() dbmodels.User {
		return dbmodels.User{FirstName: "John", LastName: "Smith"}
	}

	t.Run(`drafts move to pending and notify per sheet`, func(t *testing.T) {
		store := newFakeTimesheetStore()
		store.recs["ts-1"] = dbmodels.TimeSheet{UserID: "user-1", Status: models.TSStatusDraft}
		store.recs["ts-2"] = dbmodels.TimeSheet{UserID: "user-1", Status: models.TSStatusRejected}
		push := &fakePush{}
		pushhandler.Instance = push
		h := impl{store: store, userStore: &fakeUserStore{users: map[string]dbmodels.User{"user-1": newUser()}}}

		submitted, hMsg, err := h.Submit("user-1", timesheetapimodels.SubmitData{TimesheetIDs: []string{"ts-1", "ts-2"}})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, 2, submitted)
		require.Equal(t, models.TSStatusPending, store.recs["ts-1"].Status)
		require.Equal(t, models.TSStatusPending, store.recs["ts-2"].Status)
		require.Equal(t, 2, len(push.calls))
		require.Equal(t, models.TopicTimecardSubmission, push.calls[0].msg.Topic)
		require.Contains(t, push.calls[0].msg.Msg, "John Smith")
	})

	t.Run(`already decided sheets are not resubmitted`, func(t *testing.T) {
		store := newFakeTimesheetStore()
		store.recs["ts-1"] = dbmodels.TimeSheet{UserID: "user-1", Status: models.TSStatusApproved}
		push := &fakePush{}
		pushhandler.Instance = push
		h := impl{store: store, userStore: &fakeUserStore{users: map[string]dbmodels.User{"user-1": newUser()}}}

		submitted, hMsg, err := h.Submit("user-1", timesheetapimodels.SubmitData{TimesheetIDs: []string{"ts-1"}})
		require.Nil(t, err)
		require.Equal(t, "no timesheets to submit", hMsg)
		require.Equal(t, 0, submitted)
		require.Equal(t, models.TSStatusApproved, store.recs["ts-1"].Status)
		require.Equal(t, 0, len(push.calls))
	})

	t.Run(`another employee's sheets are untouched`, func(t *testing.T) {
		store := newFakeTimesheetStore()
		store.recs["ts-1"] = dbmodels.TimeSheet{UserID: "user-2", Status: models.TSStatusDraft}
		push := &fakePush{}
		pushhandler.Instance = push
		h := impl{store: store, userStore: &fakeUserStore{users: map[string]dbmodels.User{"user-1": newUser()}}}

		submitted, hMsg, err := h.Submit("user-1", timesheetapimodels.SubmitData{TimesheetIDs: []string{"ts-1"}})
		require.Nil(t, err)
		require.Equal(t, "no timesheets to submit", hMsg)
		require.Equal(t, 0, submitted)
		require.Equal(t, models.TSStatusDraft, store.recs["ts-1"].Status)
	})

	t.Run(`unknown employee reported`, func(t *testing.T) {
		h := impl{store: newFakeTimesheetStore(), userStore: &fakeUserStore{users: map[string]dbmodels.User{}}}
		_, hMsg, err := h.Submit("ghost", timesheetapimodels.SubmitData{TimesheetIDs: []string{"ts-1"}})
		require.Nil(t, err)
		require.Equal(t, "employee not found", hMsg)
	})
}

func TestUpdate(t *testing.T) {
	t.Run(`editor recorded on the row`, func(t *testing.T) {
		store := newFakeTimesheetStore()
		store.recs["ts-1"] = dbmodels.TimeSheet{UserID: "user-1", Status: models.TSStatusPending}
		h := impl{store: store, userStore: &fakeUserStore{}}

		jobsiteID := "js-2"
		hMsg, err := h.Update("ts-1", "manager-1", timesheetapimodels.TimeSheetEditData{
			JobsiteID:     &jobsiteID,
			StatusComment: "moved crew",
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		updMap := store.updates["ts-1"]
		require.Equal(t, "manager-1", updMap["edited_by_id"])
		require.Equal(t, "js-2", updMap["jobsite_id"])
	})

	t.Run(`missing row reported`, func(t *testing.T) {
		h := impl{store: newFakeTimesheetStore(), userStore: &fakeUserStore{}}
		hMsg, err := h.Update("ghost", "manager-1", timesheetapimodels.TimeSheetEditData{StatusComment: "fix"})
		require.Nil(t, err)
		require.Equal(t, "timesheet not found", hMsg)
	})
}
