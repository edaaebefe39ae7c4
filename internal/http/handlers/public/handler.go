package public

import "github.com/fixture-next/internal/provider"

// Handler 公开接口处理器入口
// 说明：登录、健康检查与首页横幅不经过后台分组。
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
