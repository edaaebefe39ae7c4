package repository

import (
	"errors"

	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	UpdateFields(username string, fields map[string]interface{}) error
	DeleteByUsername(username string) (int64, error)
	List(filter UserListFilter) ([]models.User, int64, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByUsername 根据账号获取用户，不存在时返回 nil
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdateFields 按账号更新指定字段
func (r *GormUserRepository) UpdateFields(username string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).Where("username = ?", username).Updates(fields).Error
}

// DeleteByUsername 按账号删除，返回受影响行数
func (r *GormUserRepository) DeleteByUsername(username string) (int64, error) {
	result := r.db.Where("username = ?", username).Delete(&models.User{})
	return result.RowsAffected, result.Error
}

// List 用户列表，按账号排序
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	var users []models.User
	query := applyKeywordFilter(r.db.Model(&models.User{}), filter.Keyword, "username", "role")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("username ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
