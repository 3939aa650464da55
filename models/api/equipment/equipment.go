package equipmentapimodels

import (
	"github.com/pkg/errors"

	dbmodels "crewtime-backend/models/db"
)

type CreateEquipmentData struct {
	QRCode       string                `json:"qr_code"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Tag          dbmodels.EquipmentTag `json:"tag"`
	Make         string                `json:"make"`
	Model        string                `json:"model"`
	Year         string                `json:"year"`
	LicensePlate string                `json:"license_plate"`
	// DestinationID, when set, records where the new equipment is hauled to.
	DestinationID string `json:"destination_id"`
}

func (r CreateEquipmentData) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Tag == "" {
		return errors.New("equipment tag is required")
	}
	switch r.Tag {
	case dbmodels.EquipmentTagTruck, dbmodels.EquipmentTagTrailer, dbmodels.EquipmentTagVehicle, dbmodels.EquipmentTagHeavy:
	default:
		return errors.Errorf("unknown equipment tag: %s", r.Tag)
	}
	return nil
}

type EquipmentView struct {
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Tag          string `json:"tag"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         string `json:"year,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	IsActive     bool   `json:"is_active"`
}

func EquipmentConvert(rec dbmodels.Equipment) EquipmentView {
	return EquipmentView{
		ID:           rec.ID,
		QRCode:       rec.QRCode,
		Name:         rec.Name,
		Description:  rec.Description,
		Tag:          string(rec.Tag),
		Make:         rec.Make,
		Model:        rec.Model,
		Year:         rec.Year,
		LicensePlate: rec.LicensePlate,
		IsActive:     rec.IsActive,
	}
}
