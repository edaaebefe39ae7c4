package admin

import (
	"strings"

	"github.com/fixture-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStatsSummary 治具汇总统计
func (h *Handler) GetStatsSummary(c *gin.Context) {
	summary, err := h.StatsService.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, summary)
}

// GetMaxStations 计算机种各站最大可开站数
func (h *Handler) GetMaxStations(c *gin.Context) {
	result, err := h.StatsService.MaxStations(strings.TrimSpace(c.Query("model_code")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}
