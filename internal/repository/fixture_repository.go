package repository

import (
	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
)

// FixtureRepository 治具数据访问接口
type FixtureRepository interface {
	List(filter FixtureListFilter) ([]models.Fixture, error)
	ListForStock() ([]models.Fixture, error)
	Create(fixture *models.Fixture) error
	Replace(fixture *models.Fixture) error
	Delete(id uint) error
}

// GormFixtureRepository GORM 实现
type GormFixtureRepository struct {
	db *gorm.DB
}

// NewFixtureRepository 创建治具仓库
func NewFixtureRepository(db *gorm.DB) *GormFixtureRepository {
	return &GormFixtureRepository{db: db}
}

// List 治具列表，按 id 倒序
func (r *GormFixtureRepository) List(filter FixtureListFilter) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	query := applyKeywordFilter(r.db.Model(&models.Fixture{}), filter.Keyword, "name", "status")
	if err := query.Order("id DESC").Find(&fixtures).Error; err != nil {
		return nil, err
	}
	return fixtures, nil
}

// ListForStock 读取全部治具，按 id 正序，供库存映射使用
func (r *GormFixtureRepository) ListForStock() ([]models.Fixture, error) {
	var fixtures []models.Fixture
	if err := r.db.Select("id", "name", "life_value").Order("id ASC").Find(&fixtures).Error; err != nil {
		return nil, err
	}
	return fixtures, nil
}

// Create 创建治具
func (r *GormFixtureRepository) Create(fixture *models.Fixture) error {
	return r.db.Create(fixture).Error
}

// Replace 按 id 整体覆盖可编辑字段，id 不存在时不报错
func (r *GormFixtureRepository) Replace(fixture *models.Fixture) error {
	return r.db.Model(&models.Fixture{}).
		Where("id = ?", fixture.ID).
		Select("name", "status", "life_type", "used", "life_value").
		Updates(fixture).Error
}

// Delete 删除治具
func (r *GormFixtureRepository) Delete(id uint) error {
	return r.db.Delete(&models.Fixture{}, id).Error
}
