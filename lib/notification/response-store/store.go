package notificationresponsestore

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

// ErrAlreadyResolved is returned when a response already exists for the
// notification; the unique index on notification_id enforces resolve-once.
var ErrAlreadyResolved = errors.New("notification already has a response")

type Provider interface {
	Create(rec dbmodels.NotificationResponse) (id string, err error)
	GetByNotification(notificationID string) (rec *dbmodels.NotificationResponse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.NotificationResponse) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return "", ErrAlreadyResolved
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByNotification(notificationID string) (*dbmodels.NotificationResponse, error) {
	rec := dbmodels.NotificationResponse{}
	err := i.db.
		Where("notification_id = ?", notificationID).
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
