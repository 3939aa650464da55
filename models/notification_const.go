package models

import "fmt"

// NotificationTopic routes notifications to subscribers and correlates
// them back to the record that raised them via ReferenceID.
type NotificationTopic string

const (
	TopicTimecardSubmission NotificationTopic = "timecard-submission"
	TopicFormSubmission     NotificationTopic = "form-submission"
	TopicEquipmentHauled    NotificationTopic = "equipment-hauled"
)

type NotificationResponseValue string

const (
	NotificationResponseApproved NotificationResponseValue = "Approved"
	NotificationResponseRejected NotificationResponseValue = "Rejected"
)

type PushTpl struct {
	Name  string
	Title string
	Msg   string
}

var PushTopicMap = map[NotificationTopic]PushTpl{
	TopicTimecardSubmission: {Name: "Timecard submitted", Title: "Timecard submitted", Msg: "%v submitted a timecard for approval."},
	TopicFormSubmission:     {Name: "Form submitted", Title: "Form submitted", Msg: "%v submitted the form \"%v\" for approval."},
	TopicEquipmentHauled:    {Name: "Equipment hauled", Title: "Equipment hauled", Msg: "Equipment %v was hauled to %v."},
}

type PushMessage struct {
	Topic NotificationTopic
	Title string
	Msg   string
}

func GetPushTimecardSubmission(employeeName string) PushMessage {
	topic := TopicTimecardSubmission
	return PushMessage{
		Topic: topic,
		Title: PushTopicMap[topic].Title,
		Msg:   fmt.Sprintf(PushTopicMap[topic].Msg, employeeName),
	}
}

func GetPushFormSubmission(employeeName, formName string) PushMessage {
	topic := TopicFormSubmission
	return PushMessage{
		Topic: topic,
		Title: PushTopicMap[topic].Title,
		Msg:   fmt.Sprintf(PushTopicMap[topic].Msg, employeeName, formName),
	}
}

func GetPushEquipmentHauled(equipmentName, destination string) PushMessage {
	topic := TopicEquipmentHauled
	return PushMessage{
		Topic: topic,
		Title: PushTopicMap[topic].Title,
		Msg:   fmt.Sprintf(PushTopicMap[topic].Msg, equipmentName, destination),
	}
}
