package repository

import (
	"strings"

	"github.com/dujiao-next/estore/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	CreateBatch(orders []models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndUser(id, userID uint) (*models.Order, error)
	ListByIDs(ids []uint) ([]models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Product").Preload("Address")
}

// CreateBatch 批量创建订单，写入后回填主键
func (r *GormOrderRepository) CreateBatch(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.Omit("User", "Address", "Product").Create(&orders).Error
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	return r.first(r.withRelations(r.db).Where("id = ?", id))
}

// GetByIDAndUser 获取用户订单详情
func (r *GormOrderRepository) GetByIDAndUser(id, userID uint) (*models.Order, error) {
	return r.first(r.withRelations(r.db).Where("id = ? AND user_id = ?", id, userID))
}

func (r *GormOrderRepository) first(query *gorm.DB) (*models.Order, error) {
	return findFirst[models.Order](query)
}

// ListByIDs 批量获取订单
func (r *GormOrderRepository) ListByIDs(ids []uint) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(ids))
	if len(ids) == 0 {
		return orders, nil
	}
	if err := r.withRelations(r.db).Where("id IN ?", ids).Order("id asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByUser 用户订单列表，最新在前
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return []models.Order{}, 0, nil
	}
	return r.list(filter)
}

// ListAdmin 后台订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	return r.list(filter)
}

func (r *GormOrderRepository) list(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, 0)
	query = r.withRelations(applyPagination(query, filter.Page, filter.PageSize))
	if err := query.Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
