package equipmenthandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewtime-backend/db"
	jobsitestore "crewtime-backend/lib/dicts/jobsite/store"
	equipmenthauledstore "crewtime-backend/lib/equipment/hauled-store"
	equipmentstore "crewtime-backend/lib/equipment/store"
	pushhandler "crewtime-backend/lib/push"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	equipmentapimodels "crewtime-backend/models/api/equipment"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(data equipmentapimodels.CreateEquipmentData) (id string, err error)
	GetByQRCode(qrCode string) (*equipmentapimodels.EquipmentView, error)
	List(pagination apimodels.Pagination) (list []equipmentapimodels.EquipmentView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        equipmentstore.NewInstance(db.DB),
		hauledStore:  equipmenthauledstore.NewInstance(db.DB),
		jobsiteStore: jobsitestore.NewInstance(db.DB),
	}
}

type impl struct {
	store        equipmentstore.Provider
	hauledStore  equipmenthauledstore.Provider
	jobsiteStore jobsitestore.Provider
}

// Create writes the equipment row and, when a destination is given, the
// dependent hauled row in one transaction; both succeed or both roll back.
func (i impl) Create(data equipmentapimodels.CreateEquipmentData) (id string, err error) {
	rec := dbmodels.Equipment{
		QRCode:       data.QRCode,
		Name:         data.Name,
		Description:  data.Description,
		Tag:          data.Tag,
		Make:         data.Make,
		Model:        data.Model,
		Year:         data.Year,
		LicensePlate: data.LicensePlate,
		IsActive:     true,
	}
	hauledID := ""
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := equipmentstore.NewInstance(tx)
		hauledStore := equipmenthauledstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			return err
		}
		if data.DestinationID != "" {
			hauledID, err = hauledStore.Create(dbmodels.EquipmentHauled{
				EquipmentID:   id,
				DestinationID: data.DestinationID,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("failed to create equipment")
		return "", err
	}
	if hauledID != "" {
		destination := data.DestinationID
		jobsite, err := i.jobsiteStore.GetByID(data.DestinationID)
		if err == nil && jobsite != nil {
			destination = jobsite.Name
		}
		msg := models.GetPushEquipmentHauled(rec.Name, destination)
		pushhandler.Instance.Notify(msg, hauledID, "")
	}
	log.WithField("rec_id", id).Info("equipment created")
	return id, nil
}

func (i impl) GetByQRCode(qrCode string) (*equipmentapimodels.EquipmentView, error) {
	rec, err := i.store.GetByQRCode(qrCode)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := equipmentapimodels.EquipmentConvert(*rec)
	return &view, nil
}

func (i impl) List(pagination apimodels.Pagination) (list []equipmentapimodels.EquipmentView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount()
	if err != nil {
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	recList, err := i.store.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]equipmentapimodels.EquipmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, equipmentapimodels.EquipmentConvert(rec))
	}
	return list, rowCount, nil
}
