package dbmodels

type Jobsite struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	QRCode      string `gorm:"type:varchar(100);uniqueIndex"`
	Address     string `gorm:"type:varchar(512)"`
	City        string `gorm:"type:varchar(150)"`
	State       string `gorm:"type:varchar(50)"`
	ZipCode     string `gorm:"type:varchar(20)"`
	Description string
	IsActive    bool
	CostCodes   []CostCode `gorm:"many2many:jobsite_cost_codes;"`
}

type CostCode struct {
	BaseModel
	Code        string `gorm:"type:varchar(50);uniqueIndex"`
	Description string `gorm:"type:varchar(255)"`
	IsActive    bool
}
