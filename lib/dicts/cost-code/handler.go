package costcodeprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"crewtime-backend/db"
	costcodestore "crewtime-backend/lib/dicts/cost-code/store"
	initchecker "crewtime-backend/lib/utils/init-checker"
	dictapimodels "crewtime-backend/models/api/dict"
	dbmodels "crewtime-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.CostCodeData) (id string, err error)
	Update(id string, request dictapimodels.CostCodeData) error
	Get(id string) (item dictapimodels.CostCodeView, err error)
	List() (list []dictapimodels.CostCodeView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: costcodestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store costcodestore.Provider
}

func (i impl) Create(request dictapimodels.CostCodeData) (id string, err error) {
	rec := dbmodels.CostCode{
		Code:        request.Code,
		Description: request.Description,
		IsActive:    true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("cost_code", rec.Code).
		WithField("rec_id", id).
		Info("cost code created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.CostCodeData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"code":        request.Code,
		"description": request.Description,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	logger.Info("cost code updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.CostCodeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.CostCodeView{}, err
	}
	if rec == nil {
		return dictapimodels.CostCodeView{}, errors.New("cost code not found")
	}
	return dictapimodels.CostCodeConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.CostCodeView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.CostCodeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CostCodeConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	logger.Info("cost code deleted")
	return nil
}
