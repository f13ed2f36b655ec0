package admin

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 商品创建/更新请求，价格以字符串传入避免浮点误差
type ProductRequest struct {
	CategoryID        uint   `json:"category_id" binding:"required"`
	Title             string `json:"title" binding:"required"`
	Slug              string `json:"slug"`
	SKU               string `json:"sku" binding:"required"`
	ShortDescription  string `json:"short_description"`
	DetailDescription string `json:"detail_description"`
	Image             string `json:"image"`
	Price             string `json:"price" binding:"required"`
	IsActive          *bool  `json:"is_active"`
	IsFeatured        bool   `json:"is_featured"`
}

func (r ProductRequest) toInput() service.ProductInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return service.ProductInput{
		CategoryID:        r.CategoryID,
		Title:             r.Title,
		Slug:              r.Slug,
		SKU:               r.SKU,
		ShortDescription:  r.ShortDescription,
		DetailDescription: r.DetailDescription,
		Image:             r.Image,
		Price:             r.Price,
		IsActive:          active,
		IsFeatured:        r.IsFeatured,
	}
}

// GetAdminProducts 商品列表（含下架）
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	products, total, err := h.ProductService.List(service.ProductListQuery{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: shared.QueryUint(c, "category_id"),
		Keyword:    c.Query("keyword"),
	})
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetAdminProduct 商品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondWithMappedError(c, err, "error.save_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, "error.save_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品，已有订单引用时拒绝
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		respondWithMappedError(c, err, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
