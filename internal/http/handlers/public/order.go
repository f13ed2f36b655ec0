package public

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/models"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	AddressID uint `json:"address_id" binding:"required"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	models.Order
	Total models.Money `json:"total"`
}

func toOrderResponses(orders []models.Order) []OrderResponse {
	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, OrderResponse{Order: orders[i], Total: orders[i].Total()})
	}
	return items
}

// Checkout 结算购物车，每个购物车行生成一条待处理订单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	orders, err := h.OrderService.Checkout(c.Request.Context(), uid, req.AddressID)
	if err != nil {
		respondWithMappedError(c, err, "error.checkout_failed", checkoutErrorRules...)
		return
	}
	response.Success(c, toOrderResponses(orders))
}

// ListOrders 当前用户订单，按下单时间倒序
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)

	orders, total, err := h.OrderService.ListOrders(uid, page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, "error.order_fetch_failed")
		return
	}
	response.SuccessWithPage(c, toOrderResponses(orders), response.BuildPagination(page, pageSize, total))
}

// GetOrder 当前用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrder(uid, id)
	if err != nil {
		respondWithMappedError(c, err, "error.order_fetch_failed")
		return
	}
	response.Success(c, OrderResponse{Order: *order, Total: order.Total()})
}
