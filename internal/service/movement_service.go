package service

import (
	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
)

// MovementService 收料或退料台账服务，仅记账，不联动库存
type MovementService struct {
	repo repository.MovementRepository
}

// NewMovementService 创建台账服务
func NewMovementService(repo repository.MovementRepository) *MovementService {
	return &MovementService{repo: repo}
}

// MovementInput 台账写入参数
type MovementInput struct {
	Type        string  `json:"type"`
	Vendor      string  `json:"vendor"`
	OrderNo     string  `json:"order_no"`
	FixtureCode string  `json:"fixture_code"`
	SerialStart string  `json:"serial_start"`
	SerialEnd   string  `json:"serial_end"`
	Serials     string  `json:"serials"`
	Operator    string  `json:"operator"`
	Note        *string `json:"note"`
}

// List 全量列出
func (s *MovementService) List() ([]models.Movement, error) {
	rows, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Movement{}
	}
	return rows, nil
}

// Create 写入台账，type 缺省为 batch
func (s *MovementService) Create(input MovementInput) (*models.Movement, error) {
	movementType := input.Type
	if movementType == "" {
		movementType = constants.MovementTypeBatch
	}
	movement := &models.Movement{
		Type:        movementType,
		Vendor:      input.Vendor,
		OrderNo:     input.OrderNo,
		FixtureCode: input.FixtureCode,
		SerialStart: input.SerialStart,
		SerialEnd:   input.SerialEnd,
		Serials:     input.Serials,
		Operator:    input.Operator,
		Note:        input.Note,
	}
	if err := s.repo.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// Delete 按 id 删除
func (s *MovementService) Delete(id uint) error {
	return s.repo.Delete(id)
}
