package repository

import (
	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
)

// UsageLogRepository 使用记录数据访问接口
type UsageLogRepository interface {
	List() ([]models.UsageLog, error)
	Create(log *models.UsageLog) error
}

// GormUsageLogRepository GORM 实现
type GormUsageLogRepository struct {
	db *gorm.DB
}

// NewUsageLogRepository 创建使用记录仓库
func NewUsageLogRepository(db *gorm.DB) *GormUsageLogRepository {
	return &GormUsageLogRepository{db: db}
}

// List 全量列出，按 id 倒序
func (r *GormUsageLogRepository) List() ([]models.UsageLog, error) {
	var logs []models.UsageLog
	if err := r.db.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Create 追加一条记录
func (r *GormUsageLogRepository) Create(log *models.UsageLog) error {
	return r.db.Create(log).Error
}
