package notificationapimodels

import (
	"time"

	"github.com/pkg/errors"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type CreateNotificationData struct {
	Topic       models.NotificationTopic `json:"topic"`
	ReferenceID string                   `json:"reference_id"`
	Title       string                   `json:"title"`
	Body        string                   `json:"body"`
	URL         string                   `json:"url"`
}

func (r CreateNotificationData) Validate() error {
	if r.Topic == "" {
		return errors.New("topic is required")
	}
	if r.ReferenceID == "" {
		return errors.New("reference id is required")
	}
	return nil
}

type NotificationView struct {
	ID          string     `json:"id"`
	Topic       string     `json:"topic"`
	ReferenceID string     `json:"reference_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	URL         string     `json:"url"`
	CreatedAt   time.Time  `json:"created_at"`
	Resolved    bool       `json:"resolved"`
	Response    string     `json:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	view := NotificationView{
		ID:          rec.ID,
		Topic:       string(rec.Topic),
		ReferenceID: rec.ReferenceID,
		Title:       rec.Title,
		Body:        rec.Body,
		URL:         rec.URL,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Response != nil {
		view.Resolved = true
		view.Response = string(rec.Response.Response)
		view.RespondedAt = &rec.Response.RespondedAt
	}
	return view
}

type SubscriptionData struct {
	Topic models.NotificationTopic `json:"topic"`
}

func (r SubscriptionData) Validate() error {
	if r.Topic == "" {
		return errors.New("topic is required")
	}
	return nil
}
