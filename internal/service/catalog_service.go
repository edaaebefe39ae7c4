package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
	"github.com/fixture-next/internal/spreadsheet"
)

// CatalogService 治具资料、机种资料与机种需求维护
type CatalogService struct {
	fixtureModelRepo repository.FixtureModelRepository
	machineModelRepo repository.MachineModelRepository
	requirementRepo  repository.RequirementRepository
}

// NewCatalogService 创建资料维护服务
func NewCatalogService(
	fixtureModelRepo repository.FixtureModelRepository,
	machineModelRepo repository.MachineModelRepository,
	requirementRepo repository.RequirementRepository,
) *CatalogService {
	return &CatalogService{
		fixtureModelRepo: fixtureModelRepo,
		machineModelRepo: machineModelRepo,
		requirementRepo:  requirementRepo,
	}
}

// FixtureModelInput 治具资料写入参数
type FixtureModelInput struct {
	Code string
	Name string
	Spec string
	Note string
}

// MachineModelInput 机种资料写入参数
type MachineModelInput struct {
	Code string
	Name string
	Note string
}

// RequirementInput 机种需求写入参数
type RequirementInput struct {
	ModelCode   string `json:"model_code"`
	Station     string `json:"station"`
	FixtureCode string `json:"fixture_code"`
	RequiredQty int    `json:"required_qty"`
}

// ListFixtureModels 列出治具资料
func (s *CatalogService) ListFixtureModels() ([]models.FixtureModel, error) {
	items, err := s.fixtureModelRepo.List()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.FixtureModel{}
	}
	return items, nil
}

// CreateFixtureModel 新增治具资料，code 与 name 必填
func (s *CatalogService) CreateFixtureModel(input FixtureModelInput) error {
	if err := requireFields(map[string]string{"code": input.Code, "name": input.Name}, "code", "name"); err != nil {
		return err
	}
	return s.fixtureModelRepo.Create(&models.FixtureModel{
		Code: input.Code,
		Name: input.Name,
		Spec: input.Spec,
		Note: input.Note,
	})
}

// ListMachineModels 列出机种资料
func (s *CatalogService) ListMachineModels() ([]models.MachineModel, error) {
	items, err := s.machineModelRepo.List()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.MachineModel{}
	}
	return items, nil
}

// CreateMachineModel 新增机种资料，code 与 name 必填
func (s *CatalogService) CreateMachineModel(input MachineModelInput) error {
	if err := requireFields(map[string]string{"code": input.Code, "name": input.Name}, "code", "name"); err != nil {
		return err
	}
	return s.machineModelRepo.Create(&models.MachineModel{
		Code: input.Code,
		Name: input.Name,
		Note: input.Note,
	})
}

// ListRequirements 列出机种需求，modelCode 为空时列出全部
func (s *CatalogService) ListRequirements(modelCode string) ([]models.FixtureRequirement, error) {
	items, err := s.requirementRepo.List(repository.RequirementListFilter{ModelCode: modelCode})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.FixtureRequirement{}
	}
	return items, nil
}

// CreateRequirement 新增需求行
func (s *CatalogService) CreateRequirement(input RequirementInput) (*models.FixtureRequirement, error) {
	fields := map[string]string{
		"model_code":   input.ModelCode,
		"station":      input.Station,
		"fixture_code": input.FixtureCode,
	}
	if err := requireFields(fields, "model_code", "station", "fixture_code"); err != nil {
		return nil, err
	}
	item := &models.FixtureRequirement{
		ModelCode:   strings.TrimSpace(input.ModelCode),
		Station:     strings.TrimSpace(input.Station),
		FixtureCode: strings.TrimSpace(input.FixtureCode),
		RequiredQty: input.RequiredQty,
	}
	if err := s.requirementRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteRequirement 删除需求行
func (s *CatalogService) DeleteRequirement(id uint) error {
	affected, err := s.requirementRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: requirement %d", ErrNotFound, id)
	}
	return nil
}

// ImportFixtureModels 从表格导入治具资料
// 缺少必要栏位时整体拒绝；code 或 name 为空的行直接跳过；逐行写入，不包事务
func (s *CatalogService) ImportFixtureModels(r io.Reader) error {
	table, err := readImportTable(r, constants.ImportColumnCode, constants.ImportColumnName)
	if err != nil {
		return err
	}
	for _, row := range table.Rows {
		code := row.Get(constants.ImportColumnCode)
		name := row.Get(constants.ImportColumnName)
		if code == "" || name == "" {
			continue
		}
		if err := s.fixtureModelRepo.Create(&models.FixtureModel{
			Code: code,
			Name: name,
			Spec: row.Get(constants.ImportColumnSpec),
			Note: row.Get(constants.ImportColumnNote),
		}); err != nil {
			return err
		}
	}
	return nil
}

// ImportMachineModels 从表格导入机种资料，规则同治具资料
func (s *CatalogService) ImportMachineModels(r io.Reader) error {
	table, err := readImportTable(r, constants.ImportColumnCode, constants.ImportColumnName)
	if err != nil {
		return err
	}
	for _, row := range table.Rows {
		code := row.Get(constants.ImportColumnCode)
		name := row.Get(constants.ImportColumnName)
		if code == "" || name == "" {
			continue
		}
		if err := s.machineModelRepo.Create(&models.MachineModel{
			Code: code,
			Name: name,
			Note: row.Get(constants.ImportColumnNote),
		}); err != nil {
			return err
		}
	}
	return nil
}

// ImportRequirements 从表格导入机种需求，required_qty 非数字时按 0 处理
func (s *CatalogService) ImportRequirements(r io.Reader) error {
	table, err := readImportTable(r,
		constants.ImportColumnModelCode,
		constants.ImportColumnStation,
		constants.ImportColumnFixtureCode,
	)
	if err != nil {
		return err
	}
	for _, row := range table.Rows {
		modelCode := row.Get(constants.ImportColumnModelCode)
		station := row.Get(constants.ImportColumnStation)
		fixtureCode := row.Get(constants.ImportColumnFixtureCode)
		if modelCode == "" || station == "" || fixtureCode == "" {
			continue
		}
		qty, _ := strconv.Atoi(row.Get(constants.ImportColumnRequiredQty))
		if err := s.requirementRepo.Create(&models.FixtureRequirement{
			ModelCode:   modelCode,
			Station:     station,
			FixtureCode: fixtureCode,
			RequiredQty: qty,
		}); err != nil {
			return err
		}
	}
	return nil
}

func readImportTable(r io.Reader, required ...string) (*spreadsheet.Table, error) {
	table, err := spreadsheet.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if missing := table.MissingColumn(required...); missing != "" {
		return nil, fmt.Errorf("%w: 缺少必要欄位：%s", ErrValidation, missing)
	}
	return table, nil
}

func requireFields(values map[string]string, names ...string) error {
	for _, name := range names {
		if strings.TrimSpace(values[name]) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, name)
		}
	}
	return nil
}
