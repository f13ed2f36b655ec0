package admin

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers 顾客列表，支持 keyword 与 status
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	users, total, err := h.ProfileService.ListUsers(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondWithMappedError(c, err, "error.user_fetch_failed")
		return
	}
	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// DeleteUser 删除顾客及其地址、购物车和订单
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProfileService.DeleteUser(c.Request.Context(), id); err != nil {
		respondWithMappedError(c, err, "error.user_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
