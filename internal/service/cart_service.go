package service

import (
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLine 购物车行（用于响应）
type CartLine struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product"`
}

// CartSummary 购物车汇总
type CartSummary struct {
	Items       []CartLine       `json:"items"`
	Total       models.Money     `json:"total"`
	ShippingFee models.Money     `json:"shipping_fee"`
	GrandTotal  models.Money     `json:"grand_total"`
	Addresses   []models.Address `json:"addresses"`
}

// DecrementResult 减量结果
type DecrementResult struct {
	Item    *models.CartItem `json:"item,omitempty"`
	Removed bool             `json:"removed"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	shippingFee decimal.Decimal
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, addressRepo repository.AddressRepository, shippingFee decimal.Decimal) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		shippingFee: shippingFee,
	}
}

// Add 加入购物车：已有行数量加一，否则新建数量为 1 的行
func (s *CartService) Add(userID, productID uint) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	product, err := s.productRepo.GetByID(productID, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
		createErr := s.cartRepo.Create(item)
		if createErr == nil {
			item.Product = product
			return item, nil
		}
		// 并发加入同一商品时唯一索引冲突，改为累加已存在的行
		existing, err = s.cartRepo.GetByUserAndProduct(userID, productID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, createErr
		}
	}
	if err := s.cartRepo.AdjustQuantity(existing.ID, 1); err != nil {
		return nil, err
	}
	return s.reload(userID, existing.ID)
}

// Increment 购物车行数量加一
func (s *CartService) Increment(userID, itemID uint) (*models.CartItem, error) {
	item, err := s.getOwned(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.AdjustQuantity(item.ID, 1); err != nil {
		return nil, err
	}
	return s.reload(userID, item.ID)
}

// Decrement 购物车行数量减一，减到 0 时删除该行
func (s *CartService) Decrement(userID, itemID uint) (*DecrementResult, error) {
	item, err := s.getOwned(userID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity <= 1 {
		if _, err := s.cartRepo.DeleteByIDAndUser(item.ID, userID); err != nil {
			return nil, err
		}
		return &DecrementResult{Removed: true}, nil
	}
	if err := s.cartRepo.AdjustQuantity(item.ID, -1); err != nil {
		return nil, err
	}
	updated, err := s.reload(userID, item.ID)
	if err != nil {
		return nil, err
	}
	return &DecrementResult{Item: updated}, nil
}

// Remove 删除购物车行，不存在时视为成功
func (s *CartService) Remove(userID, itemID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	_, err := s.cartRepo.DeleteByIDAndUser(itemID, userID)
	return err
}

// Total 购物车总额 = Σ 数量 × 商品单价，空购物车为 0
func (s *CartService) Total(userID uint) (models.Money, error) {
	if userID == 0 {
		return models.ZeroMoney(), ErrUnauthenticated
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return models.ZeroMoney(), err
	}
	return sumCart(items), nil
}

// Summary 购物车汇总：明细、总额、运费与收货地址
func (s *CartService) Summary(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for i := range items {
		item := &items[i]
		line := CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
			Product:   item.Product,
		}
		if item.Product != nil {
			line.UnitPrice = item.Product.Price
		}
		lines = append(lines, line)
	}

	total := sumCart(items)
	shipping := models.ZeroMoney()
	if len(items) > 0 {
		shipping = models.NewMoney(s.shippingFee)
	}
	return &CartSummary{
		Items:       lines,
		Total:       total,
		ShippingFee: shipping,
		GrandTotal:  total.Add(shipping),
		Addresses:   addresses,
	}, nil
}

func (s *CartService) getOwned(userID, itemID uint) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

func (s *CartService) reload(userID, itemID uint) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}

func sumCart(items []models.CartItem) models.Money {
	total := models.ZeroMoney()
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total
}
