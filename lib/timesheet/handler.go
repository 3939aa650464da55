package timesheethandler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewtime-backend/db"
	notificationhandler "crewtime-backend/lib/notification"
	pushhandler "crewtime-backend/lib/push"
	timesheetstore "crewtime-backend/lib/timesheet/store"
	usersstore "crewtime-backend/lib/users/store"
	"crewtime-backend/lib/utils/lock"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	timesheetapimodels "crewtime-backend/models/api/timesheet"
	dbmodels "crewtime-backend/models/db"
)

// approveLockWait bounds how long one approval waits for a concurrent
// approval of the same employee's batch.
const approveLockWait = 5 * time.Second

type Provider interface {
	Create(userID string, data timesheetapimodels.CreateTimeSheetData) (id string, err error)
	Submit(userID string, data timesheetapimodels.SubmitData) (submitted int, hMsg string, err error)
	Update(id, editorID string, data timesheetapimodels.TimeSheetEditData) (hMsg string, err error)
	Approve(ctx context.Context, data timesheetapimodels.ApproveData, editorID string) (result timesheetapimodels.ApproveResult, hMsg string, err error)
	Reject(ctx context.Context, data timesheetapimodels.ApproveData, editorID string) (result timesheetapimodels.ApproveResult, hMsg string, err error)
	ListByUser(userID string, pagination apimodels.Pagination) (list []timesheetapimodels.TimeSheetView, rowCount int64, err error)
	ListPending(pagination apimodels.Pagination) (list []timesheetapimodels.TimeSheetView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     timesheetstore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     timesheetstore.Provider
	userStore usersstore.Provider
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) Create(userID string, data timesheetapimodels.CreateTimeSheetData) (id string, err error) {
	rec := dbmodels.TimeSheet{
		UserID:     userID,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		JobsiteID:  data.JobsiteID,
		CostCodeID: data.CostCodeID,
		Status:     models.TSStatusDraft,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(userID).
		WithField("rec_id", id).
		Info("timesheet created")
	return id, nil
}

// Submit moves the employee's drafts to PENDING and raises one
// timecard-submission notification per sheet, keyed by the sheet id so
// the approval flow can resolve it later.
func (i impl) Submit(userID string, data timesheetapimodels.SubmitData) (submitted int, hMsg string, err error) {
	logger := i.getLogger(userID)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return 0, "", err
	}
	if user == nil {
		return 0, "employee not found", nil
	}
	affected, err := i.store.SubmitDrafts(userID, data.TimesheetIDs)
	if err != nil {
		return 0, "", err
	}
	if affected == 0 {
		return 0, "no timesheets to submit", nil
	}
	msg := models.GetPushTimecardSubmission(user.GetFullName())
	for _, id := range data.TimesheetIDs {
		pushhandler.Instance.Notify(msg, id, "")
	}
	logger.
		WithField("submitted", affected).
		Info("timesheets submitted for approval")
	return int(affected), "", nil
}

func (i impl) Update(id, editorID string, data timesheetapimodels.TimeSheetEditData) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "timesheet not found", nil
	}
	updMap := data.ToUpdMap()
	updMap["edited_by_id"] = editorID
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", err
	}
	i.getLogger(rec.UserID).
		WithField("rec_id", id).
		WithField("editor_id", editorID).
		Info("timesheet updated")
	return "", nil
}

// Approve sets every listed timesheet of the employee to APPROVED and
// resolves the matching pending timecard-submission notifications. The
// status update and the notification bookkeeping commit in one
// transaction: a failure in either leaves neither applied.
func (i impl) Approve(ctx context.Context, data timesheetapimodels.ApproveData, editorID string) (result timesheetapimodels.ApproveResult, hMsg string, err error) {
	return i.decide(ctx, data, editorID, models.TSStatusApproved, models.NotificationResponseApproved)
}

func (i impl) Reject(ctx context.Context, data timesheetapimodels.ApproveData, editorID string) (result timesheetapimodels.ApproveResult, hMsg string, err error) {
	return i.decide(ctx, data, editorID, models.TSStatusRejected, models.NotificationResponseRejected)
}

func (i impl) decide(ctx context.Context, data timesheetapimodels.ApproveData, editorID string, status models.TimeSheetStatus, response models.NotificationResponseValue) (result timesheetapimodels.ApproveResult, hMsg string, err error) {
	logger := i.getLogger(data.UserID).
		WithField("editor_id", editorID).
		WithField("status", string(status))
	locked, err := lock.WithDelay(ctx, "timesheet-approve-"+data.UserID, approveLockWait, func() error {
		return db.DB.Transaction(func(tx *gorm.DB) error {
			store := timesheetstore.NewInstance(tx)
			notifications := notificationhandler.NewHandlerWithTx(tx)

			affected, err := store.BulkSetStatus(data.UserID, data.TimesheetIDs, status, data.StatusComment, editorID)
			if err != nil {
				return err
			}
			result.Approved = affected

			resolved, err := notifications.ResolveApprovals(
				models.TopicTimecardSubmission,
				data.TimesheetIDs,
				editorID,
				response,
			)
			if err != nil {
				return err
			}
			result.NotificationsResolved = resolved
			return nil
		})
	})
	if err != nil {
		logger.WithError(err).Error("failed to update timesheet statuses")
		return timesheetapimodels.ApproveResult{}, "", err
	}
	if !locked {
		return timesheetapimodels.ApproveResult{}, "another approval for this employee is in progress, try again", nil
	}
	logger.
		WithField("updated", result.Approved).
		WithField("notifications_resolved", result.NotificationsResolved).
		Info("timesheet statuses updated")
	return result, "", nil
}

func (i impl) ListByUser(userID string, pagination apimodels.Pagination) (list []timesheetapimodels.TimeSheetView, rowCount int64, err error) {
	rowCount, err = i.store.ListCountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.store.ListByUser(userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]timesheetapimodels.TimeSheetView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, timesheetapimodels.TimeSheetConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) ListPending(pagination apimodels.Pagination) (list []timesheetapimodels.TimeSheetView, err error) {
	page, limit := pagination.GetPage()
	recList, err := i.store.ListByStatus(models.TSStatusPending, page, limit)
	if err != nil {
		return nil, err
	}
	list = make([]timesheetapimodels.TimeSheetView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, timesheetapimodels.TimeSheetConvert(rec))
	}
	return list, nil
}
