package formshandler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	pushhandler "crewtime-backend/lib/push"
	"crewtime-backend/models"
	formapimodels "crewtime-backend/models/api/form"
	dbmodels "crewtime-backend/models/db"
)

type fakeTemplateStore struct {
	recs map[string]dbmodels.FormTemplate
}

func (f *fakeTemplateStore) Create(rec dbmodels.FormTemplate) (string, error) {
	rec.ID = "tpl-created"
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeTemplateStore) GetByID(id string) (*dbmodels.FormTemplate, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeTemplateStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeTemplateStore) List(activeOnly bool) ([]dbmodels.FormTemplate, error) {
	list := []dbmodels.FormTemplate{}
	for _, rec := range f.recs {
		if activeOnly && !rec.IsActive {
			continue
		}
		list = append(list, rec)
	}
	return list, nil
}

type fakeSubmissionStore struct {
	recs    map[string]dbmodels.FormSubmission
	updates map[string]map[string]interface{}
	deleted []string
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{
		recs:    map[string]dbmodels.FormSubmission{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeSubmissionStore) Create(rec dbmodels.FormSubmission) (string, error) {
	rec.ID = "sub-created"
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeSubmissionStore) GetByID(id string) (*dbmodels.FormSubmission, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeSubmissionStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	if rec, ok := f.recs[id]; ok {
		if status, has := updMap["status"]; has {
			rec.Status = status.(models.FormStatus)
		}
		f.recs[id] = rec
	}
	return nil
}

func (f *fakeSubmissionStore) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.recs, id)
	return nil
}

func (f *fakeSubmissionStore) ListByUser(userID string, page, limit int) ([]dbmodels.FormSubmission, error) {
	return nil, nil
}

func (f *fakeSubmissionStore) ListByStatus(status models.FormStatus, page, limit int) ([]dbmodels.FormSubmission, error) {
	return nil, nil
}

type fakeFormsUserStore struct {
	users map[string]dbmodels.User
}

func (f *fakeFormsUserStore) Create(rec dbmodels.User) (string, error) { return "", nil }

func (f *fakeFormsUserStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeFormsUserStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }

func (f *fakeFormsUserStore) ExistByEmail(email string) (bool, error) { return false, nil }

func (f *fakeFormsUserStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeFormsUserStore) List(page, limit int) ([]dbmodels.User, error) { return nil, nil }

func (f *fakeFormsUserStore) ListCount() (int64, error) { return 0, nil }

func (f *fakeFormsUserStore) ListByRole(role string) ([]dbmodels.User, error) { return nil, nil }

type fakeFormsPush struct {
	notified []string
	topics   []models.NotificationTopic
}

func (f *fakeFormsPush) ReplaceToken(userID, token, platform string) error { return nil }

func (f *fakeFormsPush) Notify(msg models.PushMessage, referenceID, url string) {
	f.notified = append(f.notified, referenceID)
	f.topics = append(f.topics, msg.Topic)
}

func (f *fakeFormsPush) Deliver(notificationID string, topic models.NotificationTopic, title, body string) bool {
	return true
}

func newFormsTestHandler() (impl, *fakeTemplateStore, *fakeSubmissionStore, *fakeFormsPush) {
	templates := &fakeTemplateStore{recs: map[string]dbmodels.FormTemplate{}}
	submissions := newFakeSubmissionStore()
	push := &fakeFormsPush{}
	pushhandler.Instance = push
	h := impl{
		templateStore:   templates,
		submissionStore: submissions,
		userStore: &fakeFormsUserStore{users: map[string]dbmodels.User{
			"user-1": {FirstName: "John", LastName: "Smith"},
		}},
	}
	return h, templates, submissions, push
}

func TestSaveDraft(t *testing.T) {
	data := formapimodels.SubmissionData{TemplateID: "tpl-1", Data: json.RawMessage(`{"odometer":120533}`)}

	t.Run(`draft stored against an active template`, func(t *testing.T) {
		h, templates, submissions, _ := newFormsTestHandler()
		templates.recs["tpl-1"] = dbmodels.FormTemplate{Name: "Vehicle inspection", IsActive: true}

		id, hMsg, err := h.SaveDraft("user-1", data)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.FormStatusDraft, submissions.recs[id].Status)
		require.Equal(t, "user-1", submissions.recs[id].UserID)
	})

	t.Run(`inactive template rejected`, func(t *testing.T) {
		h, templates, _, _ := newFormsTestHandler()
		templates.recs["tpl-1"] = dbmodels.FormTemplate{Name: "Vehicle inspection", IsActive: false}

		_, hMsg, err := h.SaveDraft("user-1", data)
		require.Nil(t, err)
		require.Equal(t, "form template not found or inactive", hMsg)
	})

	t.Run(`unknown template rejected`, func(t *testing.T) {
		h, _, _, _ := newFormsTestHandler()
		_, hMsg, err := h.SaveDraft("user-1", data)
		require.Nil(t, err)
		require.Equal(t, "form template not found or inactive", hMsg)
	})
}

func TestFormSubmit(t *testing.T) {
	t.Run(`draft moves to pending and notifies`, func(t *testing.T) {
		h, _, submissions, push := newFormsTestHandler()
		submissions.recs["sub-1"] = dbmodels.FormSubmission{
			UserID:   "user-1",
			Status:   models.FormStatusDraft,
			Template: &dbmodels.FormTemplate{Name: "Vehicle inspection"},
		}

		hMsg, err := h.Submit("sub-1", "user-1")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.FormStatusPending, submissions.recs["sub-1"].Status)
		require.NotNil(t, submissions.updates["sub-1"]["submitted_at"])
		require.Equal(t, []string{"sub-1"}, push.notified)
		require.Equal(t, models.TopicFormSubmission, push.topics[0])
	})

	t.Run(`another employee's draft is invisible`, func(t *testing.T) {
		h, _, submissions, push := newFormsTestHandler()
		submissions.recs["sub-1"] = dbmodels.FormSubmission{UserID: "user-2", Status: models.FormStatusDraft}

		hMsg, err := h.Submit("sub-1", "user-1")
		require.Nil(t, err)
		require.Equal(t, "form submission not found", hMsg)
		require.Equal(t, 0, len(push.notified))
	})

	t.Run(`pending submission cannot be resubmitted`, func(t *testing.T) {
		h, _, submissions, push := newFormsTestHandler()
		submissions.recs["sub-1"] = dbmodels.FormSubmission{UserID: "user-1", Status: models.FormStatusPending}

		hMsg, err := h.Submit("sub-1", "user-1")
		require.Nil(t, err)
		require.Equal(t, "only a draft can be submitted", hMsg)
		require.Equal(t, 0, len(push.notified))
	})
}

func TestDeleteDraft(t *testing.T) {
	t.Run(`own draft deleted`, func(t *testing.T) {
		h, _, submissions, _ := newFormsTestHandler()
		submissions.recs["sub-1"] = dbmodels.FormSubmission{UserID: "user-1", Status: models.FormStatusDraft}

		hMsg, err := h.DeleteDraft("sub-1", "user-1")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, []string{"sub-1"}, submissions.deleted)
	})

	t.Run(`submitted form cannot be deleted`, func(t *testing.T) {
		h, _, submissions, _ := newFormsTestHandler()
		submissions.recs["sub-1"] = dbmodels.FormSubmission{UserID: "user-1", Status: models.FormStatusPending}

		hMsg, err := h.DeleteDraft("sub-1", "user-1")
		require.Nil(t, err)
		require.Equal(t, "only a draft can be deleted", hMsg)
		require.Equal(t, 0, len(submissions.deleted))
	})

	t.Run(`another employee's draft is invisible`, func(t *testing.T) {
		h, _, submissions, _ := newFormsTestHandler()
		submissions.recs["sub-1"] = dbmodels.FormSubmission{UserID: "user-2", Status: models.FormStatusDraft}

		hMsg, err := h.DeleteDraft("sub-1", "user-1")
		require.Nil(t, err)
		require.Equal(t, "form submission not found", hMsg)
	})
}
