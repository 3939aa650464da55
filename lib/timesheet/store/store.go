package timesheetstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crewtime-backend/models"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeSheet) (id string, err error)
	GetByID(id string) (rec *dbmodels.TimeSheet, err error)
	Update(id string, updMap map[string]interface{}) error
	// BulkSetStatus updates only rows whose id is in ids AND whose owner
	// is userID; rows of other users are untouched even when listed.
	BulkSetStatus(userID string, ids []string, status models.TimeSheetStatus, comment, editorID string) (affected int64, err error)
	// SubmitDrafts moves the listed rows to PENDING; rows already pending
	// or decided are left alone.
	SubmitDrafts(userID string, ids []string) (affected int64, err error)
	ListByUser(userID string, page, limit int) (list []dbmodels.TimeSheet, err error)
	ListCountByUser(userID string) (int64, error)
	ListByStatus(status models.TimeSheetStatus, page, limit int) (list []dbmodels.TimeSheet, err error)
	ListForExport(userID string, from, to string) (list []dbmodels.TimeSheet, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeSheet) (id string, err error) {
	err = i.db.
		Omit("User").
		Omit("Jobsite").
		Omit("CostCode").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TimeSheet, error) {
	rec := dbmodels.TimeSheet{}
	err := i.db.
		Where("id = ?", id).
		Preload("Jobsite").
		Preload("CostCode").
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
	err := i.db.
		Model(&dbmodels.TimeSheet{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) BulkSetStatus(userID string, ids []string, status models.TimeSheetStatus, comment, editorID string) (affected int64, err error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.TimeSheet{}).
		Where("id IN ?", ids).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"status":         status,
			"status_comment": comment,
			"edited_by_id":   editorID,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) SubmitDrafts(userID string, ids []string) (affected int64, err error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.TimeSheet{}).
		Where("id IN ?", ids).
		Where("user_id = ?", userID).
		Where("status IN ?", []models.TimeSheetStatus{models.TSStatusDraft, models.TSStatusRejected}).
		Updates(map[string]interface{}{
			"status": models.TSStatusPending,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) ListByUser(userID string, page, limit int) (list []dbmodels.TimeSheet, err error) {
	list = []dbmodels.TimeSheet{}
	offset := (page - 1) * limit
	err = i.db.
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Offset(offset).
		Limit(limit).
		Preload("Jobsite").
		Preload("CostCode").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCountByUser(userID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.TimeSheet{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	return count, err
}

func (i impl) ListByStatus(status models.TimeSheetStatus, page, limit int) (list []dbmodels.TimeSheet, err error) {
	list = []dbmodels.TimeSheet{}
	offset := (page - 1) * limit
	err = i.db.
		Where("status = ?", status).
		Order("start_time ASC").
		Offset(offset).
		Limit(limit).
		Preload("User").
		Preload("Jobsite").
		Preload("CostCode").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListForExport(userID string, from, to string) (list []dbmodels.TimeSheet, err error) {
	list = []dbmodels.TimeSheet{}
	tx := i.db.
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Preload("User").
		Preload("Jobsite").
		Preload("CostCode")
	if from != "" {
		tx = tx.Where("start_time >= ?", from)
	}
	if to != "" {
		tx = tx.Where("start_time <= ?", to)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
