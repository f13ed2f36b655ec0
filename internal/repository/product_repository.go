package repository

import (
	"github.com/dujiao-next/estore/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint, onlyActive bool) (*models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
	CountBySKU(sku string, excludeID uint) (int64, error)
	CountOrders(productID uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List 商品列表，按创建时间倒序
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.OnlyFeatured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ExcludeID > 0 {
		query = query.Where("id <> ?", filter.ExcludeID)
	}
	if condition, args := buildLikeCondition(r.db, filter.Keyword, "title", "sku", "short_description"); condition != "" {
		query = query.Where(condition, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.PageSize > 0 {
		query = applyPagination(query, filter.Page, filter.PageSize)
	} else {
		query = applyLimit(query, filter.Limit)
	}
	if filter.WithCategory {
		query = query.Preload("Category")
	}

	products := make([]models.Product, 0)
	if err := query.Order("created_at desc, id desc").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").Where("id = ?", id)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	return firstProduct(query)
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	return firstProduct(query)
}

func firstProduct(query *gorm.DB) (*models.Product, error) {
	return findFirst[models.Product](query)
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Category").Save(product).Error
}

// Delete 删除商品，同时清理引用它的购物车行
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	return r.countWhere("slug = ?", slug, excludeID)
}

// CountBySKU 统计 sku 数量
func (r *GormProductRepository) CountBySKU(sku string, excludeID uint) (int64, error) {
	return r.countWhere("sku = ?", sku, excludeID)
}

func (r *GormProductRepository) countWhere(condition string, value interface{}, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where(condition, value)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOrders 统计引用该商品的订单数
func (r *GormProductRepository) CountOrders(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
