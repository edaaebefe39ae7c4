package admin

import (
	"strings"

	"github.com/fixture-next/internal/http/handlers/shared"
	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListFixtureModels 治具资料列表
func (h *Handler) ListFixtureModels(c *gin.Context) {
	rows, err := h.CatalogService.ListFixtureModels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateFixtureModel 表单新增治具资料
func (h *Handler) CreateFixtureModel(c *gin.Context) {
	if err := h.CatalogService.CreateFixtureModel(service.FixtureModelInput{
		Code: c.PostForm("code"),
		Name: c.PostForm("name"),
		Spec: c.PostForm("spec"),
		Note: c.PostForm("note"),
	}); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// ImportFixtureModels 表格批量导入治具资料
func (h *Handler) ImportFixtureModels(c *gin.Context) {
	h.handleImport(c, "fixture_models", h.CatalogService.ImportFixtureModels)
}

// ListMachineModels 机种资料列表
func (h *Handler) ListMachineModels(c *gin.Context) {
	rows, err := h.CatalogService.ListMachineModels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateMachineModel 表单新增机种资料
func (h *Handler) CreateMachineModel(c *gin.Context) {
	if err := h.CatalogService.CreateMachineModel(service.MachineModelInput{
		Code: c.PostForm("code"),
		Name: c.PostForm("name"),
		Note: c.PostForm("note"),
	}); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// ImportMachineModels 表格批量导入机种资料
func (h *Handler) ImportMachineModels(c *gin.Context) {
	h.handleImport(c, "machine_models", h.CatalogService.ImportMachineModels)
}

// ListRequirements 机种需求列表，可按 model_code 过滤
func (h *Handler) ListRequirements(c *gin.Context) {
	rows, err := h.CatalogService.ListRequirements(strings.TrimSpace(c.Query("model_code")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateRequirement 新增机种需求
func (h *Handler) CreateRequirement(c *gin.Context) {
	var req service.RequirementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid requirement body", err)
		return
	}
	row, err := h.CatalogService.CreateRequirement(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// DeleteRequirement 删除机种需求
func (h *Handler) DeleteRequirement(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteRequirement(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// ImportRequirements 表格批量导入机种需求
func (h *Handler) ImportRequirements(c *gin.Context) {
	h.handleImport(c, "requirements", h.CatalogService.ImportRequirements)
}
