package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/metrics"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/queue"
	"github.com/dujiao-next/estore/internal/repository"

	"gorm.io/gorm"
)

// OrderPlacedNotifier 下单后异步通知投递
type OrderPlacedNotifier interface {
	EnqueueOrderPlaced(ctx context.Context, payload queue.OrderPlacedPayload) error
}

// OrderService 订单服务
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	notifier    OrderPlacedNotifier
}

// NewOrderService 创建订单服务，db 为空时使用全局连接
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, addressRepo repository.AddressRepository, notifier OrderPlacedNotifier) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		notifier:    notifier,
	}
}

// OrderListQuery 订单列表查询
type OrderListQuery struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// Checkout 结算：购物车每一行生成一条待处理订单并清空购物车，全部在同一事务内完成
func (s *OrderService) Checkout(ctx context.Context, userID, addressID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var orders []models.Order
	err := s.database().Transaction(func(tx *gorm.DB) error {
		address, err := s.addressRepo.WithTx(tx).GetByIDAndUser(addressID, userID)
		if err != nil {
			return err
		}
		if address == nil {
			return ErrAddressNotFound
		}

		cartRepo := s.cartRepo.WithTx(tx)
		items, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		orders = make([]models.Order, 0, len(items))
		itemIDs := make([]uint, 0, len(items))
		for i := range items {
			item := &items[i]
			if item.Product == nil {
				return ErrProductNotFound
			}
			addrID := address.ID
			orders = append(orders, models.Order{
				UserID:    userID,
				AddressID: &addrID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
				Status:    constants.OrderStatusPending,
			})
			itemIDs = append(itemIDs, item.ID)
		}

		if err := s.orderRepo.WithTx(tx).CreateBatch(orders); err != nil {
			return err
		}
		_, err = cartRepo.DeleteByIDs(userID, itemIDs)
		return err
	})
	if err != nil {
		metrics.RecordCheckout(checkoutResult(err), 0)
		return nil, err
	}

	metrics.RecordCheckout("success", len(orders))
	orderIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}
	logger.Infow("checkout_completed",
		"user_id", userID,
		"address_id", addressID,
		"order_ids", orderIDs,
	)
	s.notifyOrderPlaced(ctx, userID, addressID, orderIDs)

	created, err := s.orderRepo.ListByIDs(orderIDs)
	if err != nil {
		return orders, nil
	}
	return created, nil
}

// ListOrders 用户订单，按创建时间倒序，分页参数越界时回落到默认值
func (s *OrderService) ListOrders(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUnauthenticated
	}
	page, pageSize = repository.NormalizePage(page, pageSize)
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetOrder 获取用户自己的订单
func (s *OrderService) GetOrder(userID, orderID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 后台订单列表
func (s *OrderService) ListAdmin(query OrderListQuery) ([]models.Order, int64, error) {
	status := strings.TrimSpace(query.Status)
	if status != "" && !constants.IsValidOrderStatus(status) {
		return nil, 0, ErrOrderStatusInvalid
	}
	page, pageSize := repository.NormalizePage(query.Page, query.PageSize)
	return s.orderRepo.ListAdmin(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   query.UserID,
		Status:   status,
	})
}

// GetAdmin 后台查看订单
func (s *OrderService) GetAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByIDs 按 ID 批量获取订单
func (s *OrderService) ListByIDs(ids []uint) ([]models.Order, error) {
	return s.orderRepo.ListByIDs(ids)
}

func (s *OrderService) notifyOrderPlaced(ctx context.Context, userID, addressID uint, orderIDs []uint) {
	if s.notifier == nil {
		return
	}
	payload := queue.OrderPlacedPayload{UserID: userID, AddressID: addressID, OrderIDs: orderIDs}
	if err := s.notifier.EnqueueOrderPlaced(ctx, payload); err != nil {
		logger.Warnw("order_notify_enqueue_failed",
			"user_id", userID,
			"order_ids", orderIDs,
			"error", err,
		)
	}
}

func (s *OrderService) database() *gorm.DB {
	if s.db != nil {
		return s.db
	}
	return models.DB
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
