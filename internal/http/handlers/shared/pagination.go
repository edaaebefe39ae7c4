package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageQuery 读取 page 与 page_size 查询参数，缺省或非法时返回 0 交由下层补齐。
func PageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}
