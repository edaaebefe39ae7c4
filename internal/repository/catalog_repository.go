package repository

import (
	"strings"

	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
)

// FixtureModelRepository 治具资料数据访问接口
type FixtureModelRepository interface {
	List() ([]models.FixtureModel, error)
	Create(item *models.FixtureModel) error
}

// GormFixtureModelRepository GORM 实现
type GormFixtureModelRepository struct {
	db *gorm.DB
}

// NewFixtureModelRepository 创建治具资料仓库
func NewFixtureModelRepository(db *gorm.DB) *GormFixtureModelRepository {
	return &GormFixtureModelRepository{db: db}
}

// List 按 id 倒序列出
func (r *GormFixtureModelRepository) List() ([]models.FixtureModel, error) {
	var items []models.FixtureModel
	if err := r.db.Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 新增一条治具资料
func (r *GormFixtureModelRepository) Create(item *models.FixtureModel) error {
	return r.db.Create(item).Error
}

// MachineModelRepository 机种资料数据访问接口
type MachineModelRepository interface {
	List() ([]models.MachineModel, error)
	Create(item *models.MachineModel) error
}

// GormMachineModelRepository GORM 实现
type GormMachineModelRepository struct {
	db *gorm.DB
}

// NewMachineModelRepository 创建机种资料仓库
func NewMachineModelRepository(db *gorm.DB) *GormMachineModelRepository {
	return &GormMachineModelRepository{db: db}
}

// List 按 id 倒序列出
func (r *GormMachineModelRepository) List() ([]models.MachineModel, error) {
	var items []models.MachineModel
	if err := r.db.Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 新增一条机种资料
func (r *GormMachineModelRepository) Create(item *models.MachineModel) error {
	return r.db.Create(item).Error
}

// RequirementRepository 机种治具需求数据访问接口
type RequirementRepository interface {
	List(filter RequirementListFilter) ([]models.FixtureRequirement, error)
	ListByModelCode(modelCode string) ([]models.FixtureRequirement, error)
	Create(item *models.FixtureRequirement) error
	Delete(id uint) (int64, error)
}

// GormRequirementRepository GORM 实现
type GormRequirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository 创建需求仓库
func NewRequirementRepository(db *gorm.DB) *GormRequirementRepository {
	return &GormRequirementRepository{db: db}
}

// List 需求列表，可按机种过滤
func (r *GormRequirementRepository) List(filter RequirementListFilter) ([]models.FixtureRequirement, error) {
	var items []models.FixtureRequirement
	query := r.db.Model(&models.FixtureRequirement{})
	if code := strings.TrimSpace(filter.ModelCode); code != "" {
		query = query.Where("model_code = ?", code)
	}
	if err := query.Order("model_code ASC, station ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByModelCode 读取指定机种的全部需求行
func (r *GormRequirementRepository) ListByModelCode(modelCode string) ([]models.FixtureRequirement, error) {
	var items []models.FixtureRequirement
	if err := r.db.Where("model_code = ?", modelCode).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 新增需求行
func (r *GormRequirementRepository) Create(item *models.FixtureRequirement) error {
	return r.db.Create(item).Error
}

// Delete 删除需求行，返回受影响行数
func (r *GormRequirementRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.FixtureRequirement{}, id)
	return result.RowsAffected, result.Error
}
