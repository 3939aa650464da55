package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "crewtime-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.UserSettings{}); err != nil {
		return errors.Wrap(err, "migration failed for UserSettings")
	}
	if err := DB.AutoMigrate(&dbmodels.Contacts{}); err != nil {
		return errors.Wrap(err, "migration failed for Contacts")
	}
	if err := DB.AutoMigrate(&dbmodels.Jobsite{}); err != nil {
		return errors.Wrap(err, "migration failed for Jobsite")
	}
	if err := DB.AutoMigrate(&dbmodels.CostCode{}); err != nil {
		return errors.Wrap(err, "migration failed for CostCode")
	}
	if err := DB.AutoMigrate(&dbmodels.TimeSheet{}); err != nil {
		return errors.Wrap(err, "migration failed for TimeSheet")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "migration failed for Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.NotificationRead{}); err != nil {
		return errors.Wrap(err, "migration failed for NotificationRead")
	}
	if err := DB.AutoMigrate(&dbmodels.NotificationResponse{}); err != nil {
		return errors.Wrap(err, "migration failed for NotificationResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.TopicSubscription{}); err != nil {
		return errors.Wrap(err, "migration failed for TopicSubscription")
	}
	if err := DB.AutoMigrate(&dbmodels.DeviceToken{}); err != nil {
		return errors.Wrap(err, "migration failed for DeviceToken")
	}
	if err := DB.AutoMigrate(&dbmodels.Equipment{}); err != nil {
		return errors.Wrap(err, "migration failed for Equipment")
	}
	if err := DB.AutoMigrate(&dbmodels.EquipmentHauled{}); err != nil {
		return errors.Wrap(err, "migration failed for EquipmentHauled")
	}
	if err := DB.AutoMigrate(&dbmodels.FormTemplate{}); err != nil {
		return errors.Wrap(err, "migration failed for FormTemplate")
	}
	if err := DB.AutoMigrate(&dbmodels.FormSubmission{}); err != nil {
		return errors.Wrap(err, "migration failed for FormSubmission")
	}
	if err := DB.AutoMigrate(&dbmodels.FormApproval{}); err != nil {
		return errors.Wrap(err, "migration failed for FormApproval")
	}
	log.Info("migrations finished")
	return nil
}
