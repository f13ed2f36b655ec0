package repository

import (
	"github.com/dujiao-next/estore/internal/models"

	"gorm.io/gorm"
)

// AddressRepository 收货地址数据访问接口
type AddressRepository interface {
	ListByUser(userID uint) ([]models.Address, error)
	GetByIDAndUser(id, userID uint) (*models.Address, error)
	Create(address *models.Address) error
	DeleteByIDAndUser(id, userID uint) (int64, error)
	WithTx(tx *gorm.DB) AddressRepository
}

// GormAddressRepository GORM 实现
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository 创建地址仓库
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAddressRepository) WithTx(tx *gorm.DB) AddressRepository {
	if tx == nil {
		return r
	}
	return &GormAddressRepository{db: tx}
}

// ListByUser 获取用户全部地址
func (r *GormAddressRepository) ListByUser(userID uint) ([]models.Address, error) {
	addresses := make([]models.Address, 0)
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByIDAndUser 获取属于该用户的地址，不存在或不属于该用户时返回 nil
func (r *GormAddressRepository) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	return findFirst[models.Address](r.db.Where("id = ? AND user_id = ?", id, userID))
}

// Create 创建地址
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// DeleteByIDAndUser 删除用户地址，返回影响行数
func (r *GormAddressRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	return result.RowsAffected, result.Error
}
