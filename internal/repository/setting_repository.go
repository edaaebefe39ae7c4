package repository

import (
	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository 设置数据访问接口
type SettingRepository interface {
	ListByCategory(category string) ([]models.Setting, error)
	Upsert(category, key, value string) error
}

// GormSettingRepository GORM 实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建设置仓库
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// ListByCategory 读取某分类下全部键值
func (r *GormSettingRepository) ListByCategory(category string) ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.Where("category = ?", category).Order("id ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert 插入设置，(category, skey) 冲突时覆盖 svalue
func (r *GormSettingRepository) Upsert(category, key, value string) error {
	setting := models.Setting{
		Category: category,
		Key:      key,
		Value:    value,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "skey"}},
		DoUpdates: clause.AssignmentColumns([]string{"svalue"}),
	}).Create(&setting).Error
}
