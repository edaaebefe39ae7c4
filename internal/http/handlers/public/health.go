package public

import (
	"context"
	"time"

	"github.com/fixture-next/internal/http/handlers/shared"
	"github.com/fixture-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Root 服务横幅
func (h *Handler) Root(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "API is running",
		"db_host": h.Config.Database.Host,
	})
}

// Healthz 检查数据库连通性
func (h *Handler) Healthz(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "database unavailable", err)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		shared.RespondError(c, response.CodeInternal, "database unavailable", err)
		return
	}
	response.Success(c, gin.H{"status": "ok"})
}
