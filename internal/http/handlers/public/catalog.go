package public

import (
	"strings"

	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// GetHome 首页：推荐分类与推荐商品
func (h *Handler) GetHome(c *gin.Context) {
	home, err := h.CatalogService.Home(c.Request.Context())
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.Success(c, home)
}

// ListCategories 上架分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.Categories(c.Request.Context())
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.Success(c, categories)
}

// ListCategoryProducts 分类下的上架商品
func (h *Handler) ListCategoryProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	category, products, total, err := h.CatalogService.CategoryProducts(strings.TrimSpace(c.Param("slug")), page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.SuccessWithPage(c, gin.H{
		"category": category,
		"products": products,
	}, response.BuildPagination(page, pageSize, total))
}

// ListProducts 上架商品列表，支持分类与关键字筛选
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	products, total, err := h.CatalogService.Products(service.CatalogProductQuery{
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

// GetProduct 商品详情与同分类推荐
func (h *Handler) GetProduct(c *gin.Context) {
	detail, err := h.CatalogService.ProductDetail(c.Request.Context(), strings.TrimSpace(c.Param("slug")))
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.Success(c, detail)
}
