package models

import "time"

// Movement 收料与退料共用的台账字段
type Movement struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Type        string    `gorm:"type:varchar(20);default:'batch'" json:"type"`
	Vendor      string    `gorm:"type:varchar(255)" json:"vendor"`
	OrderNo     string    `gorm:"type:varchar(255)" json:"order_no"`
	FixtureCode string    `gorm:"type:varchar(255)" json:"fixture_code"`
	SerialStart string    `gorm:"type:varchar(255)" json:"serial_start"`
	SerialEnd   string    `gorm:"type:varchar(255)" json:"serial_end"`
	Serials     string    `gorm:"type:text" json:"serials"`
	Operator    string    `gorm:"type:varchar(255)" json:"operator"`
	Note        *string   `gorm:"type:varchar(255)" json:"note"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// Receipt 收料记录
type Receipt struct {
	Movement
}

// TableName 指定表名
func (Receipt) TableName() string {
	return "receipts"
}

// Return 退料记录
type Return struct {
	Movement
}

// TableName 指定表名
func (Return) TableName() string {
	return "returns_table"
}

// UsageLog 治具使用与更换记录
type UsageLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Fixture   string    `gorm:"type:varchar(255)" json:"fixture"` // 治具名称，非外键
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	Note      *string   `gorm:"type:varchar(255)" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (UsageLog) TableName() string {
	return "logs"
}
