package admin

import (
	"bytes"
	"net/http"

	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsageLogs 使用记录
func (h *Handler) ListUsageLogs(c *gin.Context) {
	rows, err := h.UsageLogService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateUsageLog 新增使用记录
func (h *Handler) CreateUsageLog(c *gin.Context) {
	var req service.UsageLogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid log body", err)
		return
	}
	if _, err := h.UsageLogService.Create(req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// ExportUsageLogs 导出 CSV，不走统一响应结构
func (h *Handler) ExportUsageLogs(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.UsageLogService.ExportCSV(&buf); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=logs.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
