package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddSameProductTwiceIncrementsLine(t *testing.T) {
	store := newTestStore(t)
	user := store.user(t, "alice")
	category := store.category(t, "tea", true, false)
	product := store.product(t, category, "green-tea", "10.00", true)
	svc := store.cartService()

	_, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	item, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	items, err := store.carts.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddRejectsUnknownOrInactiveProduct(t *testing.T) {
	store := newTestStore(t)
	user := store.user(t, "alice")
	category := store.category(t, "tea", true, false)
	hidden := store.product(t, category, "hidden", "3.00", false)
	svc := store.cartService()

	_, err := svc.Add(user.ID, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Add(user.ID, hidden.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartDecrementRemovesAtOne(t *testing.T) {
	store := newTestStore(t)
	user := store.user(t, "alice")
	category := store.category(t, "tea", true, false)
	product := store.product(t, category, "green-tea", "10.00", true)
	svc := store.cartService()

	item, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	_, err = svc.Increment(user.ID, item.ID)
	require.NoError(t, err)

	result, err := svc.Decrement(user.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, result.Removed)
	require.NotNil(t, result.Item)
	assert.Equal(t, 1, result.Item.Quantity)

	result, err = svc.Decrement(user.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, result.Removed)

	_, err = svc.Decrement(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartLineOfAnotherUserIsNotFound(t *testing.T) {
	store := newTestStore(t)
	alice := store.user(t, "alice")
	bob := store.user(t, "bob")
	category := store.category(t, "tea", true, false)
	product := store.product(t, category, "green-tea", "10.00", true)
	svc := store.cartService()

	item, err := svc.Add(alice.ID, product.ID)
	require.NoError(t, err)

	_, err = svc.Increment(bob.ID, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	_, err = svc.Decrement(bob.ID, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	require.NoError(t, svc.Remove(bob.ID, item.ID))
	items, err := store.carts.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartTotalAndSummary(t *testing.T) {
	store := newTestStore(t)
	user := store.user(t, "alice")
	category := store.category(t, "tea", true, false)
	a := store.product(t, category, "a", "10.00", true)
	b := store.product(t, category, "b", "5.00", true)
	store.address(t, user)
	svc := store.cartService()

	total, err := svc.Total(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", total.String())

	empty, err := svc.Summary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", empty.ShippingFee.String())
	assert.Equal(t, "0.00", empty.GrandTotal.String())

	_, err = svc.Add(user.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, b.ID)
	require.NoError(t, err)

	total, err = svc.Total(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.00", total.String())

	summary, err := svc.Summary(user.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 2)
	assert.Equal(t, "20.00", summary.Items[0].LineTotal.String())
	assert.Equal(t, "10.00", summary.ShippingFee.String())
	assert.Equal(t, "35.00", summary.GrandTotal.String())
	assert.Len(t, summary.Addresses, 1)
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	user := store.user(t, "alice")
	svc := store.cartService()
	assert.NoError(t, svc.Remove(user.ID, 12345))
	assert.ErrorIs(t, svc.Remove(0, 1), ErrUnauthenticated)
}
