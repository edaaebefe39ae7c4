package models

// User 系统账号表，以 username 作为业务主键
type User struct {
	ID           uint   `gorm:"primarykey" json:"-"`                                   // 主键
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"` // 账号
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`                   // 密码哈希（不返回给前端）
	Role         string `gorm:"type:varchar(20);not null" json:"role"`                 // 角色 admin / user
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
