package models

// Fixture 治具库存表
type Fixture struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"type:varchar(255);index" json:"name"`               // 治具名称，与需求表 fixture_code 按值匹配
	Status    string `gorm:"type:varchar(50);default:'active'" json:"status"`   // 状态
	LifeType  string `gorm:"type:varchar(50);default:'count'" json:"life_type"` // 寿命类型
	Used      int    `gorm:"not null;default:0" json:"used"`                    // 已使用次数
	LifeValue int    `gorm:"not null;default:0" json:"life_value"`              // 寿命阈值 / 库存数量
}

// TableName 指定表名
func (Fixture) TableName() string {
	return "fixtures"
}

// LifespanThreshold 统计口径：寿命阈值
func (f Fixture) LifespanThreshold() int {
	return f.LifeValue
}

// StockQuantity 开站计算口径：可用库存
// life_value 同时承担两种含义，拆分字段前两个访问器读取同一列
func (f Fixture) StockQuantity() int {
	return f.LifeValue
}
