package repository

import (
	"math"
	"testing"
	"time"

	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepositoryListByUserNewestFirst(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	user := seedUser(t, db, "carol")
	other := seedUser(t, db, "dave")
	product := seedProduct(t, db, "lamp", "30.00")

	base := time.Now().Add(-time.Hour)
	orders := []models.Order{
		{UserID: user.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price, Status: constants.OrderStatusPending, CreatedAt: base},
		{UserID: user.ID, ProductID: product.ID, Quantity: 2, UnitPrice: product.Price, Status: constants.OrderStatusPending, CreatedAt: base.Add(time.Minute)},
		{UserID: other.ID, ProductID: product.ID, Quantity: 9, UnitPrice: product.Price, Status: constants.OrderStatusPending, CreatedAt: base},
	}
	require.NoError(t, repo.CreateBatch(orders))
	for _, o := range orders {
		require.NotZero(t, o.ID)
	}

	list, total, err := repo.ListByUser(OrderListFilter{UserID: user.ID, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].Quantity)
	assert.Equal(t, 1, list[1].Quantity)
	require.NotNil(t, list[0].Product)
	assert.Equal(t, "lamp", list[0].Product.Slug)
}

func TestOrderRepositoryListByUserRequiresUser(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)

	list, total, err := repo.ListByUser(OrderListFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestOrderAddressSetNullOnDelete(t *testing.T) {
	db := setupRepositoryTestDB(t)
	orderRepo := NewOrderRepository(db)
	addressRepo := NewAddressRepository(db)
	user := seedUser(t, db, "erin")
	product := seedProduct(t, db, "rug", "12.00")

	address := &models.Address{UserID: user.ID, Location: "Home", StreetAddress: "1 Main St", City: "Springfield", State: "IL"}
	require.NoError(t, addressRepo.Create(address))
	orders := []models.Order{{UserID: user.ID, AddressID: &address.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price, Status: constants.OrderStatusPending}}
	require.NoError(t, orderRepo.CreateBatch(orders))

	affected, err := addressRepo.DeleteByIDAndUser(address.ID, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := orderRepo.GetByIDAndUser(orders[0].ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.AddressID)
}

func TestOrderRepositoryHugePageIsEmptyNotFirstPage(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)
	user := seedUser(t, db, "frank")
	product := seedProduct(t, db, "vase", "8.00")
	require.NoError(t, repo.CreateBatch([]models.Order{
		{UserID: user.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price, Status: constants.OrderStatusPending},
	}))

	list, total, err := repo.ListByUser(OrderListFilter{UserID: user.ID, Page: math.MaxInt, PageSize: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, list)
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, DefaultPageSize},
		{-3, -1, 1, DefaultPageSize},
		{2, 50, 2, 50},
		{math.MaxInt, 1000, MaxPage, MaxPageSize},
	}
	for _, tc := range cases {
		page, size := NormalizePage(tc.page, tc.size)
		assert.Equal(t, tc.wantPage, page)
		assert.Equal(t, tc.wantSize, size)
	}
}
