package dbmodels

import (
	"time"

	"crewtime-backend/models"
)

type Notification struct {
	BaseModel
	Topic        models.NotificationTopic `gorm:"type:varchar(100);index:idx_notification_topic"`
	ReferenceID  string                   `gorm:"type:varchar(36);index:idx_notification_reference"`
	Title        string                   `gorm:"type:varchar(255)"`
	Body         string
	URL          string `gorm:"type:varchar(512)"`
	PushedAt     *time.Time
	PushAttempts int
	Reads        []NotificationRead     `gorm:"foreignKey:NotificationID"`
	Response     *NotificationResponse  `gorm:"foreignKey:NotificationID"`
}

type NotificationRead struct {
	BaseModel
	NotificationID string `gorm:"type:varchar(36);index:idx_notification_read"`
	UserID         string `gorm:"type:varchar(36)"`
	ReadAt         time.Time
}

// NotificationResponse records a user's decision on a notification.
// NotificationID is unique: a notification is resolvable exactly once.
type NotificationResponse struct {
	BaseModel
	NotificationID string `gorm:"type:varchar(36);uniqueIndex:idx_notification_response_once"`
	UserID         string `gorm:"type:varchar(36)"`
	Response       models.NotificationResponseValue `gorm:"type:varchar(50)"`
	RespondedAt    time.Time
}

type TopicSubscription struct {
	BaseModel
	UserID string                   `gorm:"type:varchar(36);index:idx_topic_subscription_user"`
	Topic  models.NotificationTopic `gorm:"type:varchar(100);index:idx_topic_subscription_topic"`
}

type DeviceToken struct {
	BaseModel
	UserID   string `gorm:"type:varchar(36);index:idx_device_token_user"`
	Token    string `gorm:"type:varchar(512)"`
	Platform string `gorm:"type:varchar(20)"`
}
