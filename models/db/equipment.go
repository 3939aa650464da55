package dbmodels

type EquipmentTag string

const (
	EquipmentTagTruck   EquipmentTag = "TRUCK"
	EquipmentTagTrailer EquipmentTag = "TRAILER"
	EquipmentTagVehicle EquipmentTag = "VEHICLE"
	EquipmentTagHeavy   EquipmentTag = "EQUIPMENT"
)

type Equipment struct {
	BaseModel
	QRCode       string `gorm:"type:varchar(100);uniqueIndex"`
	Name         string `gorm:"type:varchar(255)"`
	Description  string
	Tag          EquipmentTag `gorm:"type:varchar(50)"`
	Make         string       `gorm:"type:varchar(100)"`
	Model        string       `gorm:"type:varchar(100)"`
	Year         string       `gorm:"type:varchar(10)"`
	LicensePlate string       `gorm:"type:varchar(20)"`
	IsActive     bool
}

type EquipmentHauled struct {
	BaseModel
	EquipmentID   string     `gorm:"type:varchar(36);index:idx_equipment_hauled"`
	Equipment     *Equipment `gorm:"foreignKey:EquipmentID"`
	DestinationID string     `gorm:"type:varchar(36)"`
	Destination   *Jobsite   `gorm:"foreignKey:DestinationID"`
	TruckingLogID string     `gorm:"type:varchar(36)"`
}
