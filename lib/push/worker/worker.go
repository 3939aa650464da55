package pushworker

import (
	"context"
	"time"

	"crewtime-backend/config"
	"crewtime-backend/db"
	notificationstore "crewtime-backend/lib/notification/store"
	pushhandler "crewtime-backend/lib/push"
	baseworker "crewtime-backend/lib/utils/base-worker"
	"crewtime-backend/lib/utils/helpers"
)

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Push.RetryIntervalInSec) * time.Second
	i := &impl{
		BaseImpl: *baseworker.NewInstance("PushRetryWorker", 15*time.Second, interval),
		store:    notificationstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store notificationstore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListUnpushed(config.Conf.Push.MaxAttempts)
	if err != nil {
		logger.WithError(err).Error("failed to list undelivered notifications")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		now := time.Now()
		updMap := map[string]interface{}{
			"pushed_at":     &now,
			"push_attempts": rec.PushAttempts + 1,
		}
		if err = i.store.Update(rec.ID, updMap); err != nil {
			logger.
				WithError(err).
				WithField("notification_id", rec.ID).
				Error("failed to update notification delivery state")
			continue
		}
		if !pushhandler.Instance.Deliver(rec.ID, rec.Topic, rec.Title, rec.Body) {
			updMap = map[string]interface{}{"pushed_at": nil}
			if err = i.store.Update(rec.ID, updMap); err != nil {
				logger.
					WithError(err).
					WithField("notification_id", rec.ID).
					Error("failed to mark notification for retry")
			}
		}
	}
}
