package repository

import (
	"time"

	"github.com/dujiao-next/estore/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByIDAndUser(id, userID uint) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	AdjustQuantity(id uint, delta int) error
	DeleteByIDAndUser(id, userID uint) (int64, error)
	DeleteByIDs(userID uint, ids []uint) (int64, error)
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车行（含商品）
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByIDAndUser 获取属于该用户的购物车行
func (r *GormCartRepository) GetByIDAndUser(id, userID uint) (*models.CartItem, error) {
	return r.first(r.db.Preload("Product").Where("id = ? AND user_id = ?", id, userID))
}

// GetByUserAndProduct 按用户与商品查找购物车行
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	return r.first(r.db.Where("user_id = ? AND product_id = ?", userID, productID))
}

func (r *GormCartRepository) first(query *gorm.DB) (*models.CartItem, error) {
	return findFirst[models.CartItem](query)
}

// Create 新增购物车行
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// AdjustQuantity 在数据库侧原子增减数量
func (r *GormCartRepository) AdjustQuantity(id uint, delta int) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		}).Error
}

// DeleteByIDAndUser 删除用户的购物车行，返回影响行数
func (r *GormCartRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteByIDs 批量删除用户的购物车行
func (r *GormCartRepository) DeleteByIDs(userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Where("user_id = ? AND id IN ?", userID, ids).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
