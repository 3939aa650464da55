package jobsiteprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"crewtime-backend/db"
	jobsitestore "crewtime-backend/lib/dicts/jobsite/store"
	initchecker "crewtime-backend/lib/utils/init-checker"
	dictapimodels "crewtime-backend/models/api/dict"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.JobsiteData) (id string, err error)
	Update(id string, request dictapimodels.JobsiteData) error
	Get(id string) (item dictapimodels.JobsiteView, err error)
	GetByQRCode(qrCode string) (item *dictapimodels.JobsiteView, err error)
	List() (list []dictapimodels.JobsiteView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: jobsitestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store jobsitestore.Provider
}

func (i impl) Create(request dictapimodels.JobsiteData) (id string, err error) {
	rec := dbmodels.Jobsite{
		Name:        request.Name,
		QRCode:      request.QRCode,
		Address:     request.Address,
		City:        request.City,
		State:       request.State,
		ZipCode:     request.ZipCode,
		Description: request.Description,
		IsActive:    true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("jobsite_name", rec.Name).
		WithField("rec_id", id).
		Info("jobsite created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.JobsiteData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name":        request.Name,
		"address":     request.Address,
		"city":        request.City,
		"state":       request.State,
		"zip_code":    request.ZipCode,
		"description": request.Description,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	logger.Info("jobsite updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.JobsiteView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.JobsiteView{}, err
	}
	if rec == nil {
		return dictapimodels.JobsiteView{}, errors.New("jobsite not found")
	}
	return dictapimodels.JobsiteConvert(*rec), nil
}

func (i impl) GetByQRCode(qrCode string) (item *dictapimodels.JobsiteView, err error) {
	rec, err := i.store.GetByQRCode(qrCode)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := dictapimodels.JobsiteConvert(*rec)
	return &view, nil
}

func (i impl) List() (list []dictapimodels.JobsiteView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.JobsiteView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.JobsiteConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	logger.Info("jobsite deleted")
	return nil
}
