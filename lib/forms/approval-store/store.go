package formapprovalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FormApproval) (id string, err error)
	GetBySubmission(submissionID string) (rec *dbmodels.FormApproval, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FormApproval) (id string, err error) {
	err = i.db.
		Omit("Submission").
		Omit("Approver").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetBySubmission(submissionID string) (*dbmodels.FormApproval, error) {
	rec := dbmodels.FormApproval{}
	err := i.db.
		Where("submission_id = ?", submissionID).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.FormApproval{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
