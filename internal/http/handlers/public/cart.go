package public

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/models"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加入购物车请求
type CartAddRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// CartItemResponse 购物车行响应
type CartItemResponse struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product,omitempty"`
}

func toCartItemResponse(item *models.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		LineTotal: item.LineTotal(),
		Product:   item.Product,
	}
}

// GetCart 获取购物车汇总
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.Summary(uid)
	if err != nil {
		respondWithMappedError(c, err, "error.cart_fetch_failed")
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加入购物车，已存在则数量加一
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.CartService.Add(uid, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, "error.cart_update_failed", cartItemErrorRules...)
		return
	}
	response.Success(c, toCartItemResponse(item))
}

// IncrementCartItem 购物车行数量加一
func (h *Handler) IncrementCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.CartService.Increment(uid, id)
	if err != nil {
		respondWithMappedError(c, err, "error.cart_update_failed", cartItemErrorRules...)
		return
	}
	response.Success(c, toCartItemResponse(item))
}

// DecrementCartItem 购物车行数量减一，减到 0 时删除该行
func (h *Handler) DecrementCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.CartService.Decrement(uid, id)
	if err != nil {
		respondWithMappedError(c, err, "error.cart_update_failed", cartItemErrorRules...)
		return
	}
	payload := gin.H{"removed": result.Removed}
	if result.Item != nil {
		payload["item"] = toCartItemResponse(result.Item)
	}
	response.Success(c, payload)
}

// RemoveCartItem 移除购物车行，行不存在也视为成功
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CartService.Remove(uid, id); err != nil {
		respondWithMappedError(c, err, "error.cart_update_failed", cartItemErrorRules...)
		return
	}
	response.Success(c, gin.H{"removed": true})
}
