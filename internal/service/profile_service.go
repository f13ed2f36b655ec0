package service

import (
	"context"
	"strings"

	"github.com/dujiao-next/estore/internal/cache"
	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"
)

// Profile 个人中心数据
type Profile struct {
	User         *models.User     `json:"user"`
	Addresses    []models.Address `json:"addresses"`
	RecentOrders []models.Order   `json:"recent_orders"`
}

// ProfileService 个人中心服务
type ProfileService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	recentLimit int
}

// NewProfileService 创建个人中心服务
func NewProfileService(userRepo repository.UserRepository, addressRepo repository.AddressRepository, orderRepo repository.OrderRepository, recentLimit int) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		recentLimit: positive(recentLimit, 5),
	}
}

// Get 用户资料、地址与最近订单
func (s *ProfileService) Get(userID uint) (*Profile, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	addresses, err := s.addressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	orders, _, err := s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     1,
		PageSize: s.recentLimit,
		UserID:   userID,
	})
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Addresses: addresses, RecentOrders: orders}, nil
}

// ListUsers 后台用户列表，支持用户名/邮箱关键字与状态筛选
func (s *ProfileService) ListUsers(filter repository.UserListFilter) ([]models.User, int64, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	filter.Status = strings.TrimSpace(filter.Status)
	if filter.Status != "" && filter.Status != constants.UserStatusActive && filter.Status != constants.UserStatusDisabled {
		return nil, 0, ErrUserStatusInvalid
	}
	return s.userRepo.List(filter)
}

// DeleteUser 删除用户，地址、购物车与订单一并删除
func (s *ProfileService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}
	_ = cache.DelUserAuthState(ctx, userID)
	return nil
}
