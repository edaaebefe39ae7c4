package service

import (
	"fmt"
	"strings"

	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
)

// FixtureService 治具库存服务
type FixtureService struct {
	repo repository.FixtureRepository
}

// NewFixtureService 创建治具服务
func NewFixtureService(repo repository.FixtureRepository) *FixtureService {
	return &FixtureService{repo: repo}
}

// FixtureInput 治具写入参数，状态与寿命类型为空时取默认值
type FixtureInput struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LifeType  string `json:"life_type"`
	Used      int    `json:"used"`
	LifeValue int    `json:"life_value"`
}

func (in FixtureInput) toModel() (*models.Fixture, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = constants.FixtureStatusActive
	}
	lifeType := in.LifeType
	if lifeType == "" {
		lifeType = constants.FixtureLifeTypeCount
	}
	return &models.Fixture{
		Name:      in.Name,
		Status:    status,
		LifeType:  lifeType,
		Used:      in.Used,
		LifeValue: in.LifeValue,
	}, nil
}

// List 列出治具，keyword 对 name 或 status 做子串匹配
func (s *FixtureService) List(keyword string) ([]models.Fixture, error) {
	fixtures, err := s.repo.List(repository.FixtureListFilter{Keyword: keyword})
	if err != nil {
		return nil, err
	}
	if fixtures == nil {
		fixtures = []models.Fixture{}
	}
	return fixtures, nil
}

// Create 新增治具
func (s *FixtureService) Create(input FixtureInput) (*models.Fixture, error) {
	fixture, err := input.toModel()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(fixture); err != nil {
		return nil, err
	}
	return fixture, nil
}

// Update 按 id 整体覆盖，id 不存在时静默成功
func (s *FixtureService) Update(id uint, input FixtureInput) error {
	fixture, err := input.toModel()
	if err != nil {
		return err
	}
	fixture.ID = id
	return s.repo.Replace(fixture)
}

// Delete 删除治具
func (s *FixtureService) Delete(id uint) error {
	return s.repo.Delete(id)
}
