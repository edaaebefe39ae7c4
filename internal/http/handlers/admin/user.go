package admin

import (
	"strings"

	"github.com/fixture-next/internal/http/handlers/shared"
	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRequest 创建或修改账号请求
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListUsers 分页查询账号
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := shared.PageQuery(c)
	result, err := h.UserService.List(strings.TrimSpace(c.Query("q")), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, result)
}

// CreateUser 创建账号
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid user body", err)
		return
	}
	if err := h.UserService.Create(service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}); err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("user_created", "username", req.Username)
	response.SuccessOK(c)
}

// UpdateUser 修改密码或角色
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid user body", err)
		return
	}
	if err := h.UserService.Update(c.Param("username"), service.UpdateUserInput{
		Password: req.Password,
		Role:     req.Role,
	}); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// DeleteUser 删除账号
func (h *Handler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.UserService.Delete(username); err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("user_deleted", "username", username)
	response.SuccessOK(c)
}
