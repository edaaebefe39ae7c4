package service

import (
	"fmt"
	"strings"

	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService 账号与登录服务
type UserService struct {
	repo repository.UserRepository
}

// NewUserService 创建账号服务
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// LoginResult 登录结果
type LoginResult struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateUserInput 创建账号输入
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput 更新账号输入，空字段表示不修改
type UpdateUserInput struct {
	Password string
	Role     string
}

// UserPage 分页结果
type UserPage struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Data     []models.User `json:"data"`
}

// Login 校验账号密码，无状态
func (s *UserService) Login(username, password string) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: 帳號不存在", ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: 密碼錯誤", ErrInvalidCredentials)
	}
	return &LoginResult{Username: user.Username, Role: user.Role}, nil
}

// List 分页列出账号
func (s *UserService) List(keyword string, page, pageSize int) (*UserPage, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)
	users, total, err := s.repo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  keyword,
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return &UserPage{Total: total, Page: page, PageSize: pageSize, Data: users}, nil
}

// Create 创建账号，密码缺省为 1234，角色缺省为 user
func (s *UserService) Create(input CreateUserInput) error {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	role, err := normalizeRole(input.Role, constants.RoleUser)
	if err != nil {
		return err
	}
	password := input.Password
	if password == "" {
		password = constants.DefaultUserPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}); err != nil {
		if repository.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrConstraint, err.Error())
		}
		return err
	}
	return nil
}

// Update 修改密码或角色
func (s *UserService) Update(username string, input UpdateUserInput) error {
	fields := map[string]interface{}{}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password_hash"] = string(hash)
	}
	if strings.TrimSpace(input.Role) != "" {
		role, err := normalizeRole(input.Role, "")
		if err != nil {
			return err
		}
		fields["role"] = role
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: No updates provided", ErrValidation)
	}
	return s.repo.UpdateFields(username, fields)
}

// Delete 删除账号，默认管理员不可删除
func (s *UserService) Delete(username string) error {
	if username == constants.DefaultAdminUsername {
		return ErrProtectedUser
	}
	affected, err := s.repo.DeleteByUsername(username)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, username)
	}
	return nil
}

func normalizeRole(role, fallback string) (string, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = fallback
	}
	switch role {
	case constants.RoleAdmin, constants.RoleUser:
		return role, nil
	default:
		return "", fmt.Errorf("%w: role must be admin or user", ErrValidation)
	}
}
