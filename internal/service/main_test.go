package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testStore struct {
	db          *gorm.DB
	users       *repository.GormUserRepository
	addresses   *repository.GormAddressRepository
	categories  *repository.GormCategoryRepository
	products    *repository.GormProductRepository
	carts       *repository.GormCartRepository
	orders      *repository.GormOrderRepository
	adminRepo   *repository.GormAdminRepository
	shippingFee string
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dialector, err := models.NewDialector("sqlite", fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.MigrateWith(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return &testStore{
		db:          db,
		users:       repository.NewUserRepository(db),
		addresses:   repository.NewAddressRepository(db),
		categories:  repository.NewCategoryRepository(db),
		products:    repository.NewProductRepository(db),
		carts:       repository.NewCartRepository(db),
		orders:      repository.NewOrderRepository(db),
		adminRepo:   repository.NewAdminRepository(db),
		shippingFee: "10.00",
	}
}

func (s *testStore) cartService() *CartService {
	return NewCartService(s.carts, s.products, s.addresses, models.MustMoney(s.shippingFee).Decimal)
}

func (s *testStore) orderService(notifier OrderPlacedNotifier) *OrderService {
	return NewOrderService(s.db, s.orders, s.carts, s.addresses, notifier)
}

func (s *testStore) user(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x", Status: "active"}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func (s *testStore) category(t *testing.T, slug string, active, featured bool) *models.Category {
	t.Helper()
	category := &models.Category{Title: strings.ToUpper(slug), Slug: slug, IsActive: active, IsFeatured: featured}
	require.NoError(t, s.db.Create(category).Error)
	return category
}

func (s *testStore) product(t *testing.T, category *models.Category, slug, price string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: category.ID,
		Title:      strings.ToUpper(slug),
		Slug:       slug,
		SKU:        "SKU-" + slug,
		Price:      models.MustMoney(price),
		IsActive:   active,
	}
	require.NoError(t, s.db.Create(product).Error)
	return product
}

func (s *testStore) address(t *testing.T, user *models.User) *models.Address {
	t.Helper()
	address := &models.Address{UserID: user.ID, Location: "Home", StreetAddress: "1 Main St", City: "Springfield", State: "IL"}
	require.NoError(t, s.db.Create(address).Error)
	return address
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UserJWT.SecretKey = "user-secret"
	cfg.JWT.SecretKey = "admin-secret"
	return cfg
}
