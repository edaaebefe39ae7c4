package public

import (
	"github.com/fixture-next/internal/http/handlers/shared"
	"github.com/fixture-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

// Login 校验账号密码，返回账号与角色
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid login body", err)
		return
	}
	result, err := h.UserService.Login(req.Username, req.Password)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	shared.RequestLog(c).Infow("user_login", "username", result.Username, "role", result.Role)
	response.Success(c, result)
}
