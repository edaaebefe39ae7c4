package shared

import (
	"strconv"
	"strings"

	"github.com/fixture-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 读取路径中的数字 id，非法时直接返回 400。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		RespondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}
