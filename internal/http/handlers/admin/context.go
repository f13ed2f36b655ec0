package admin

import (
	"errors"

	"github.com/dujiao-next/estore/internal/authz"
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return shared.ContextID(c, shared.ContextAdminID)
}

func respondError(c *gin.Context, code int, key string, err error) {
	shared.RespondError(c, code, key, err)
}

func respondWithMappedError(c *gin.Context, err error, fallbackKey string, rules ...shared.MappedError) {
	shared.RespondServiceError(c, err, fallbackKey, rules...)
}

// respondAuthzError 角色/策略非法返回 400，其余为服务端错误
func respondAuthzError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrInvalidRole):
		respondWithMappedError(c, service.ErrRoleInvalid, "error.authz_failed")
	case errors.Is(err, authz.ErrInvalidPolicy):
		respondWithMappedError(c, service.ErrPolicyInvalid, "error.authz_failed")
	default:
		respondError(c, response.CodeInternal, "error.authz_failed", err)
	}
}

func isSuperAdmin(c *gin.Context) bool {
	return shared.ContextFlag(c, shared.ContextAdminIsSuper)
}
