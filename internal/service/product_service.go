package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品后台服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	CategoryID        uint
	Title             string
	Slug              string
	SKU               string
	ShortDescription  string
	DetailDescription string
	Image             string
	Price             string
	IsActive          bool
	IsFeatured        bool
}

// ProductListQuery 后台商品列表查询
type ProductListQuery struct {
	Page       int
	PageSize   int
	CategoryID uint
	Keyword    string
}

// List 商品列表（含下架）
func (s *ProductService) List(query ProductListQuery) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         query.Page,
		PageSize:     query.PageSize,
		CategoryID:   query.CategoryID,
		Keyword:      strings.TrimSpace(query.Keyword),
		WithCategory: true,
	})
}

// Get 获取商品（含下架）
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product := &models.Product{}
	if err := s.apply(product, input, 0); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	InvalidateCatalog(ctx)
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(product, input, id); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	InvalidateCatalog(ctx)
	return product, nil
}

// Delete 删除商品，已有订单引用时拒绝，购物车行一并删除
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.productRepo.CountOrders(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductInUse
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	InvalidateCatalog(ctx)
	return nil
}

func (s *ProductService) apply(product *models.Product, input ProductInput, excludeID uint) error {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > 150 {
		return ErrProductInvalid
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil || price.IsNegative() {
		return ErrPriceInvalid
	}
	slug, err := normalizeSlug(input.Slug, title)
	if err != nil {
		return ErrProductInvalid
	}
	if count, err := s.productRepo.CountBySlug(slug, excludeID); err != nil {
		return err
	} else if count > 0 {
		return ErrSlugExists
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		return ErrProductInvalid
	}
	if count, err := s.productRepo.CountBySKU(sku, excludeID); err != nil {
		return err
	} else if count > 0 {
		return ErrSKUExists
	}

	product.CategoryID = category.ID
	product.Category = nil
	product.Title = title
	product.Slug = slug
	product.SKU = sku
	product.ShortDescription = strings.TrimSpace(input.ShortDescription)
	product.DetailDescription = strings.TrimSpace(input.DetailDescription)
	product.Image = strings.TrimSpace(input.Image)
	product.Price = models.NewMoney(price)
	product.IsActive = input.IsActive
	product.IsFeatured = input.IsFeatured
	return nil
}
