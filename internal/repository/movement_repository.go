package repository

import (
	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
)

// MovementRepository 收退料台账数据访问接口，按表区分收料与退料
type MovementRepository interface {
	List() ([]models.Movement, error)
	Create(movement *models.Movement) error
	Delete(id uint) error
}

// GormMovementRepository GORM 实现
type GormMovementRepository struct {
	db    *gorm.DB
	table string
}

// NewReceiptRepository 创建收料仓库
func NewReceiptRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db, table: models.Receipt{}.TableName()}
}

// NewReturnRepository 创建退料仓库
func NewReturnRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db, table: models.Return{}.TableName()}
}

// Table 返回所操作的表名
func (r *GormMovementRepository) Table() string {
	return r.table
}

// List 全量列出，按 id 倒序
func (r *GormMovementRepository) List() ([]models.Movement, error) {
	var rows []models.Movement
	if err := r.db.Table(r.table).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create 写入一条台账，created_at 由服务端赋值
func (r *GormMovementRepository) Create(movement *models.Movement) error {
	return r.db.Table(r.table).Create(movement).Error
}

// Delete 按 id 删除，不影响治具库存
func (r *GormMovementRepository) Delete(id uint) error {
	return r.db.Table(r.table).Where("id = ?", id).Delete(&models.Movement{}).Error
}
