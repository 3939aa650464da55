package formshandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewtime-backend/db"
	formapprovalstore "crewtime-backend/lib/forms/approval-store"
	formsubmissionstore "crewtime-backend/lib/forms/submission-store"
	formtemplatestore "crewtime-backend/lib/forms/template-store"
	notificationhandler "crewtime-backend/lib/notification"
	pushhandler "crewtime-backend/lib/push"
	usersstore "crewtime-backend/lib/users/store"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	formapimodels "crewtime-backend/models/api/form"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	CreateTemplate(data formapimodels.TemplateData) (id string, err error)
	UpdateTemplate(id string, data formapimodels.TemplateData) (hMsg string, err error)
	ListTemplates(activeOnly bool) ([]formapimodels.TemplateView, error)
	SaveDraft(userID string, data formapimodels.SubmissionData) (id string, hMsg string, err error)
	Submit(submissionID, userID string) (hMsg string, err error)
	Decide(data formapimodels.ApprovalData, approverID string) (hMsg string, err error)
	GetSubmission(id string) (*formapimodels.SubmissionView, error)
	ListByUser(userID string, pagination apimodels.Pagination) ([]formapimodels.SubmissionView, error)
	ListPending(pagination apimodels.Pagination) ([]formapimodels.SubmissionView, error)
	DeleteDraft(id, userID string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		templateStore:   formtemplatestore.NewInstance(db.DB),
		submissionStore: formsubmissionstore.NewInstance(db.DB),
		approvalStore:   formapprovalstore.NewInstance(db.DB),
		userStore:       usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	templateStore   formtemplatestore.Provider
	submissionStore formsubmissionstore.Provider
	approvalStore   formapprovalstore.Provider
	userStore       usersstore.Provider
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) CreateTemplate(data formapimodels.TemplateData) (id string, err error) {
	return i.templateStore.Create(dbmodels.FormTemplate{
		Name:        data.Name,
		Description: data.Description,
		Schema:      string(data.Schema),
		IsActive:    data.IsActive,
	})
}

func (i impl) UpdateTemplate(id string, data formapimodels.TemplateData) (hMsg string, err error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "form template not found", nil
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"schema":      string(data.Schema),
		"is_active":   data.IsActive,
	}
	return "", i.templateStore.Update(id, updMap)
}

func (i impl) ListTemplates(activeOnly bool) ([]formapimodels.TemplateView, error) {
	recList, err := i.templateStore.List(activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]formapimodels.TemplateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, formapimodels.TemplateConvert(rec))
	}
	return result, nil
}

func (i impl) SaveDraft(userID string, data formapimodels.SubmissionData) (id string, hMsg string, err error) {
	template, err := i.templateStore.GetByID(data.TemplateID)
	if err != nil {
		return "", "", err
	}
	if template == nil || !template.IsActive {
		return "", "form template not found or inactive", nil
	}
	id, err = i.submissionStore.Create(dbmodels.FormSubmission{
		TemplateID: data.TemplateID,
		UserID:     userID,
		Status:     models.FormStatusDraft,
		Data:       string(data.Data),
	})
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

// Submit moves a draft to PENDING and raises a form-submission
// notification keyed by the submission id.
func (i impl) Submit(submissionID, userID string) (hMsg string, err error) {
	logger := i.getLogger(userID).WithField("rec_id", submissionID)
	rec, err := i.submissionStore.GetByID(submissionID)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.UserID != userID {
		return "form submission not found", nil
	}
	if rec.Status != models.FormStatusDraft {
		return "only a draft can be submitted", nil
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "employee not found", nil
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":       models.FormStatusPending,
		"submitted_at": &now,
	}
	if err = i.submissionStore.Update(submissionID, updMap); err != nil {
		return "", err
	}
	formName := ""
	if rec.Template != nil {
		formName = rec.Template.Name
	}
	msg := models.GetPushFormSubmission(user.GetFullName(), formName)
	pushhandler.Instance.Notify(msg, submissionID, "")
	logger.Info("form submitted for approval")
	return "", nil
}

// Decide records the approval verdict and resolves the pending
// form-submission notification in the same transaction.
func (i impl) Decide(data formapimodels.ApprovalData, approverID string) (hMsg string, err error) {
	logger := i.getLogger(approverID).WithField("rec_id", data.SubmissionID)
	rec, err := i.submissionStore.GetByID(data.SubmissionID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "form submission not found", nil
	}
	if rec.Status != models.FormStatusPending {
		return "form submission is not pending approval", nil
	}
	status := data.Status()
	response := models.NotificationResponseApproved
	if status == models.FormStatusDenied {
		response = models.NotificationResponseRejected
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		submissions := formsubmissionstore.NewInstance(tx)
		approvals := formapprovalstore.NewInstance(tx)
		notifications := notificationhandler.NewHandlerWithTx(tx)

		if err := submissions.Update(data.SubmissionID, map[string]interface{}{"status": status}); err != nil {
			return err
		}

		existing, err := approvals.GetBySubmission(data.SubmissionID)
		if err != nil {
			return err
		}
		if existing != nil {
			updMap := map[string]interface{}{
				"approver_id": approverID,
				"status":      status,
				"comment":     data.Comment,
				"decided_at":  &now,
			}
			if err = approvals.Update(existing.ID, updMap); err != nil {
				return err
			}
		} else {
			_, err = approvals.Create(dbmodels.FormApproval{
				SubmissionID: data.SubmissionID,
				ApproverID:   approverID,
				Status:       status,
				Comment:      data.Comment,
				DecidedAt:    &now,
			})
			if err != nil {
				return err
			}
		}

		_, err = notifications.ResolveApprovals(
			models.TopicFormSubmission,
			[]string{data.SubmissionID},
			approverID,
			response,
		)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to record form decision")
		return "", err
	}
	logger.
		WithField("status", string(status)).
		Info("form decision recorded")
	return "", nil
}

func (i impl) GetSubmission(id string) (*formapimodels.SubmissionView, error) {
	rec, err := i.submissionStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := formapimodels.SubmissionConvert(*rec)
	return &view, nil
}

func (i impl) ListByUser(userID string, pagination apimodels.Pagination) ([]formapimodels.SubmissionView, error) {
	page, limit := pagination.GetPage()
	recList, err := i.submissionStore.ListByUser(userID, page, limit)
	if err != nil {
		return nil, err
	}
	result := make([]formapimodels.SubmissionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, formapimodels.SubmissionConvert(rec))
	}
	return result, nil
}

func (i impl) ListPending(pagination apimodels.Pagination) ([]formapimodels.SubmissionView, error) {
	page, limit := pagination.GetPage()
	recList, err := i.submissionStore.ListByStatus(models.FormStatusPending, page, limit)
	if err != nil {
		return nil, err
	}
	result := make([]formapimodels.SubmissionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, formapimodels.SubmissionConvert(rec))
	}
	return result, nil
}

func (i impl) DeleteDraft(id, userID string) (hMsg string, err error) {
	rec, err := i.submissionStore.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.UserID != userID {
		return "form submission not found", nil
	}
	if rec.Status != models.FormStatusDraft {
		return "only a draft can be deleted", nil
	}
	return "", i.submissionStore.Delete(id)
}
