package models

import (
	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AllModels 返回需要迁移的全部数据表
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Fixture{},
		&FixtureModel{},
		&FixtureRequirement{},
		&MachineModel{},
		&Receipt{},
		&Return{},
		&UsageLog{},
		&Setting{},
	}
}

// InitSchema 建表并写入默认管理员，可重复执行
// 迁移与种子数据不在同一事务内，中途失败时重跑即可
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return err
	}
	return seedDefaultAdmin(db)
}

func seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Where("username = ?", constants.DefaultAdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(constants.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := User{
		Username:     constants.DefaultAdminUsername,
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Warnw("default_admin_created_with_default_password", "username", admin.Username)
	logger.Warnw("default_admin_password_change_required", "username", admin.Username)
	return nil
}
