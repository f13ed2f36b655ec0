package repository

import (
	"testing"

	"github.com/dujiao-next/estore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepositoryAdjustQuantity(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCartRepository(db)
	user := seedUser(t, db, "alice")
	product := seedProduct(t, db, "mug", "10.00")

	item := &models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, repo.Create(item))
	require.NoError(t, repo.AdjustQuantity(item.ID, 2))

	got, err := repo.GetByIDAndUser(item.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Quantity)
	require.NotNil(t, got.Product)
	assert.Equal(t, "10.00", got.Product.Price.String())
}

func TestCartRepositoryScopesByUser(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCartRepository(db)
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")
	product := seedProduct(t, db, "pen", "2.50")

	item := &models.CartItem{UserID: owner.ID, ProductID: product.ID, Quantity: 1}
	require.NoError(t, repo.Create(item))

	got, err := repo.GetByIDAndUser(item.ID, other.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	affected, err := repo.DeleteByIDAndUser(item.ID, other.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.DeleteByIDAndUser(item.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}

func TestCartRepositoryUniquePerUserProduct(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCartRepository(db)
	user := seedUser(t, db, "bob")
	product := seedProduct(t, db, "cap", "5.00")

	require.NoError(t, repo.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1}))
	err := repo.Create(&models.CartItem{UserID: user.ID, ProductID: product.ID, Quantity: 1})
	assert.Error(t, err)
}
