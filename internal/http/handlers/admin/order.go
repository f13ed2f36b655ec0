package admin

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminOrders 订单列表，可按用户与状态筛选
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	orders, total, err := h.OrderService.ListAdmin(service.OrderListQuery{
		Page:     page,
		PageSize: pageSize,
		UserID:   shared.QueryUint(c, "user_id"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondWithMappedError(c, err, "error.order_fetch_failed")
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetAdminOrder 订单详情
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetAdmin(id)
	if err != nil {
		respondWithMappedError(c, err, "error.order_fetch_failed")
		return
	}
	response.Success(c, gin.H{
		"order": order,
		"total": order.Total(),
	})
}
