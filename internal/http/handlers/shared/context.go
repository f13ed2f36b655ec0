package shared

import (
	"github.com/dujiao-next/estore/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入上下文的键
const (
	ContextUserID       = "user_id"
	ContextAdminID      = "admin_id"
	ContextAdminIsSuper = "admin_is_super"
)

// ContextID 读取鉴权中间件写入的主体 ID，缺失时返回 401
func ContextID(c *gin.Context, key string) (uint, bool) {
	value, _ := c.Get(key)
	id, ok := value.(uint)
	if !ok || id == 0 {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	return id, true
}

// ContextFlag 读取布尔上下文值
func ContextFlag(c *gin.Context, key string) bool {
	value, _ := c.Get(key)
	flag, _ := value.(bool)
	return flag
}
