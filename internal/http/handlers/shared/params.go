package shared

import (
	"strconv"
	"strings"

	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/repository"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 解析路径中的正整数 ID，非法时直接返回 400。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return 0, false
	}
	return uint(id), true
}

// QueryUint 读取可选的正整数查询参数，缺失或非法时返回 0。
func QueryUint(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Query(name)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// QueryPagination 读取 page/page_size 并按仓库层边界归一化
func QueryPagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	pageSize, _ := strconv.Atoi(strings.TrimSpace(c.Query("page_size")))
	return repository.NormalizePage(page, pageSize)
}
