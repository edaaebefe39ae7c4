package admin

import (
	"strings"

	"github.com/fixture-next/internal/http/handlers/shared"
	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListFixtures 查询治具，q 模糊匹配名称或状态
func (h *Handler) ListFixtures(c *gin.Context) {
	rows, err := h.FixtureService.List(strings.TrimSpace(c.Query("q")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateFixture 新增治具
func (h *Handler) CreateFixture(c *gin.Context) {
	var req service.FixtureInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid fixture body", err)
		return
	}
	if _, err := h.FixtureService.Create(req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// UpdateFixture 整体替换治具字段
func (h *Handler) UpdateFixture(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.FixtureInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid fixture body", err)
		return
	}
	if err := h.FixtureService.Update(id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// DeleteFixture 删除治具
func (h *Handler) DeleteFixture(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.FixtureService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}
