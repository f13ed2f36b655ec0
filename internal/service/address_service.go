package service

import (
	"strings"
	"unicode/utf8"

	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"
)

// 地址字段最大长度，街道地址更长
const (
	AddressFieldMaxLength  = 150
	StreetAddressMaxLength = 200
)

// AddressInput 新增地址输入
type AddressInput struct {
	Location      string
	StreetAddress string
	City          string
	State         string
}

// AddressService 收货地址服务
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// List 用户全部地址
func (s *AddressService) List(userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	return s.addressRepo.ListByUser(userID)
}

// Create 新增地址
func (s *AddressService) Create(userID uint, input AddressInput) (*models.Address, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	address := &models.Address{
		UserID:        userID,
		Location:      strings.TrimSpace(input.Location),
		StreetAddress: strings.TrimSpace(input.StreetAddress),
		City:          strings.TrimSpace(input.City),
		State:         strings.TrimSpace(input.State),
	}
	fields := []struct {
		value string
		max   int
	}{
		{address.Location, AddressFieldMaxLength},
		{address.StreetAddress, StreetAddressMaxLength},
		{address.City, AddressFieldMaxLength},
		{address.State, AddressFieldMaxLength},
	}
	for _, field := range fields {
		if field.value == "" || utf8.RuneCountInString(field.value) > field.max {
			return nil, ErrAddressInvalid
		}
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete 删除地址，非本人地址视为不存在；已下订单的地址引用置空
func (s *AddressService) Delete(userID, addressID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	affected, err := s.addressRepo.DeleteByIDAndUser(addressID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
