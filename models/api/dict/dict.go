package dictapimodels

import (
	"github.com/pkg/errors"

	dbmodels "crewtime-backend/models/db"
)

type JobsiteData struct {
	Name        string `json:"name"`
	QRCode      string `json:"qr_code"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Description string `json:"description"`
	CostCodeIDs []string `json:"cost_code_ids"`
}

func (r JobsiteData) Validate() error {
	if r.Name == "" {
		return errors.New("jobsite name is required")
	}
	return nil
}

type JobsiteView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	QRCode      string         `json:"qr_code"`
	Address     string         `json:"address,omitempty"`
	City        string         `json:"city,omitempty"`
	State       string         `json:"state,omitempty"`
	ZipCode     string         `json:"zip_code,omitempty"`
	Description string         `json:"description,omitempty"`
	IsActive    bool           `json:"is_active"`
	CostCodes   []CostCodeView `json:"cost_codes,omitempty"`
}

func JobsiteConvert(rec dbmodels.Jobsite) JobsiteView {
	view := JobsiteView{
		ID:          rec.ID,
		Name:        rec.Name,
		QRCode:      rec.QRCode,
		Address:     rec.Address,
		City:        rec.City,
		State:       rec.State,
		ZipCode:     rec.ZipCode,
		Description: rec.Description,
		IsActive:    rec.IsActive,
	}
	for _, code := range rec.CostCodes {
		view.CostCodes = append(view.CostCodes, CostCodeConvert(code))
	}
	return view
}

type CostCodeData struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (r CostCodeData) Validate() error {
	if r.Code == "" {
		return errors.New("cost code is required")
	}
	return nil
}

type CostCodeView struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func CostCodeConvert(rec dbmodels.CostCode) CostCodeView {
	return CostCodeView{
		ID:          rec.ID,
		Code:        rec.Code,
		Description: rec.Description,
		IsActive:    rec.IsActive,
	}
}
