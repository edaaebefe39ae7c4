package models

// FixtureModel 治具资料表，code 不唯一
type FixtureModel struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Code string `gorm:"type:varchar(100);index" json:"code"`
	Name string `gorm:"type:varchar(255)" json:"name"`
	Spec string `gorm:"type:varchar(255)" json:"spec"`
	Note string `gorm:"type:varchar(255)" json:"note"`
}

// TableName 指定表名
func (FixtureModel) TableName() string {
	return "fixture_models"
}

// MachineModel 机种资料表
type MachineModel struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Code string `gorm:"type:varchar(100);index" json:"code"`
	Name string `gorm:"type:varchar(255)" json:"name"`
	Note string `gorm:"type:varchar(255)" json:"note"`
}

// TableName 指定表名
func (MachineModel) TableName() string {
	return "machine_models"
}

// FixtureRequirement 机种各站的治具需求
type FixtureRequirement struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	ModelCode   string `gorm:"type:varchar(100);index" json:"model_code"` // 对应 MachineModel.Code
	Station     string `gorm:"type:varchar(100)" json:"station"`          // 站别
	FixtureCode string `gorm:"type:varchar(100)" json:"fixture_code"`     // 对应 Fixture.Name
	RequiredQty int    `gorm:"not null;default:0" json:"required_qty"`    // 单站需求数量
}

// TableName 指定表名
func (FixtureRequirement) TableName() string {
	return "fixture_requirements"
}
