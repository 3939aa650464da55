package models

type TimeSheetStatus string

const (
	TSStatusDraft    TimeSheetStatus = "DRAFT"
	TSStatusPending  TimeSheetStatus = "PENDING"
	TSStatusApproved TimeSheetStatus = "APPROVED"
	TSStatusRejected TimeSheetStatus = "REJECTED"
)

var tsStatusHumanName = map[TimeSheetStatus]string{
	TSStatusDraft:    "Draft",
	TSStatusPending:  "Pending approval",
	TSStatusApproved: "Approved",
	TSStatusRejected: "Rejected",
}

func (s TimeSheetStatus) ToHuman() string {
	if human, exist := tsStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type FormStatus string

const (
	FormStatusDraft    FormStatus = "DRAFT"
	FormStatusPending  FormStatus = "PENDING"
	FormStatusApproved FormStatus = "APPROVED"
	FormStatusDenied   FormStatus = "DENIED"
)

var formStatusHumanName = map[FormStatus]string{
	FormStatusDraft:    "Draft",
	FormStatusPending:  "Pending approval",
	FormStatusApproved: "Approved",
	FormStatusDenied:   "Denied",
}

func (s FormStatus) ToHuman() string {
	if human, exist := formStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
