package admin

import (
	"github.com/dujiao-next/estore/internal/http/handlers/shared"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类创建/更新请求
type CategoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"is_active"`
	IsFeatured  bool   `json:"is_featured"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return service.CategoryInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		IsActive:    active,
		IsFeatured:  r.IsFeatured,
	}
}

// GetAdminCategories 分类列表
func (h *Handler) GetAdminCategories(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	categories, total, err := h.CategoryService.List(service.CategoryListQuery{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
	})
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.SuccessWithPage(c, categories, response.BuildPagination(page, pageSize, total))
}

// GetAdminCategory 分类详情
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, "error.catalog_failed")
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondWithMappedError(c, err, "error.save_failed")
		return
	}
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	category, err := h.CategoryService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, "error.save_failed")
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类，仍有商品引用时拒绝
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		respondWithMappedError(c, err, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
