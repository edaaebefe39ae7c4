package models

// Setting 分类键值设置表，(category, skey) 唯一
type Setting struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Category string `gorm:"type:varchar(50);not null;uniqueIndex:uniq_k,priority:1" json:"category"` // 分类，如 smtp
	Key      string `gorm:"column:skey;type:varchar(100);not null;uniqueIndex:uniq_k,priority:2" json:"skey"`
	Value    string `gorm:"column:svalue;type:text" json:"svalue"`
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
