package equipmenthauledstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EquipmentHauled) (id string, err error)
	ListByEquipment(equipmentID string) (list []dbmodels.EquipmentHauled, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EquipmentHauled) (id string, err error) {
	err = i.db.
		Omit("Equipment").
		Omit("Destination").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByEquipment(equipmentID string) (list []dbmodels.EquipmentHauled, err error) {
	list = []dbmodels.EquipmentHauled{}
	err = i.db.
		Where("equipment_id = ?", equipmentID).
		Order("created_at DESC").
		Preload("Destination").
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
