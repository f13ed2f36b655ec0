package service

import (
	"context"
	"strings"
	"testing"

	"github.com/dujiao-next/estore/internal/constants"
	"github.com/dujiao-next/estore/internal/models"
	"github.com/dujiao-next/estore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndTokenRevocation(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserAuthService(testConfig(), store.users)
	ctx := context.Background()

	user, token, _, err := svc.Register(ctx, RegisterInput{
		Username:        "alice",
		Email:           "Alice@Example.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	userID, err := svc.ValidateUserToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, _, _, err = svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	_, _, _, err = svc.Login(ctx, "alice", "wrong-pass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret123", "newsecret9", "newsecret9"))
	_, err = svc.ValidateUserToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, fresh, _, err := svc.Login(ctx, "alice", "newsecret9")
	require.NoError(t, err)
	_, err = svc.ValidateUserToken(ctx, fresh)
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserAuthService(testConfig(), store.users)
	ctx := context.Background()
	store.user(t, "taken")

	cases := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"short username", RegisterInput{Username: "ab", Email: "a@b.co", Password: "secret123", PasswordConfirm: "secret123"}, ErrUsernameInvalid},
		{"bad chars", RegisterInput{Username: "al ice", Email: "a@b.co", Password: "secret123", PasswordConfirm: "secret123"}, ErrUsernameInvalid},
		{"bad email", RegisterInput{Username: "alice", Email: "nope", Password: "secret123", PasswordConfirm: "secret123"}, ErrInvalidEmail},
		{"mismatch", RegisterInput{Username: "alice", Email: "a@b.co", Password: "secret123", PasswordConfirm: "secret124"}, ErrPasswordMismatch},
		{"weak", RegisterInput{Username: "alice", Email: "a@b.co", Password: "short", PasswordConfirm: "short"}, ErrWeakPassword},
		{"taken username", RegisterInput{Username: "taken", Email: "a@b.co", Password: "secret123", PasswordConfirm: "secret123"}, ErrUsernameExists},
		{"taken email", RegisterInput{Username: "alice", Email: "taken@example.com", Password: "secret123", PasswordConfirm: "secret123"}, ErrEmailExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := svc.Register(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPasswordPolicyKeys(t *testing.T) {
	cfg := testConfig()
	err := validatePassword(cfg.Security.PasswordPolicy, "abc")
	key, args, ok := ValidationKey(err)
	require.True(t, ok)
	assert.Equal(t, "error.password_too_short", key)
	assert.Equal(t, []interface{}{cfg.Security.PasswordPolicy.MinLength}, args)

	err = validatePassword(cfg.Security.PasswordPolicy, "abcdefghij")
	key, _, _ = ValidationKey(err)
	assert.Equal(t, "error.password_number", key)
}

func TestAddressCreateValidatesAndDeleteChecksOwner(t *testing.T) {
	store := newTestStore(t)
	alice := store.user(t, "alice")
	bob := store.user(t, "bob")
	svc := NewAddressService(store.addresses)

	_, err := svc.Create(alice.ID, AddressInput{Location: "Home", StreetAddress: "  ", City: "X", State: "Y"})
	assert.ErrorIs(t, err, ErrAddressInvalid)

	address, err := svc.Create(alice.ID, AddressInput{Location: " Home ", StreetAddress: "1 Main", City: "X", State: "Y"})
	require.NoError(t, err)
	assert.Equal(t, "Home", address.Location)

	long := strings.Repeat("x", StreetAddressMaxLength)
	_, err = svc.Create(alice.ID, AddressInput{Location: "Office", StreetAddress: long, City: "X", State: "Y"})
	require.NoError(t, err)
	_, err = svc.Create(alice.ID, AddressInput{Location: "Office", StreetAddress: long + "x", City: "X", State: "Y"})
	assert.ErrorIs(t, err, ErrAddressInvalid)
	_, err = svc.Create(alice.ID, AddressInput{Location: "Office", StreetAddress: "1 Main", City: strings.Repeat("c", AddressFieldMaxLength+1), State: "Y"})
	assert.ErrorIs(t, err, ErrAddressInvalid)

	assert.ErrorIs(t, svc.Delete(bob.ID, address.ID), ErrAddressNotFound)
	assert.NoError(t, svc.Delete(alice.ID, address.ID))
}

func TestProfileAndUserDeletion(t *testing.T) {
	store := newTestStore(t)
	alice := store.user(t, "alice")
	store.user(t, "bob")
	address := store.address(t, alice)
	product := store.product(t, store.category(t, "books", true, false), "go-book", "12.00", true)
	require.NoError(t, store.db.Create(&models.CartItem{UserID: alice.ID, ProductID: product.ID, Quantity: 1}).Error)
	require.NoError(t, store.db.Create(&models.Order{
		UserID: alice.ID, AddressID: &address.ID, ProductID: product.ID, Quantity: 2,
		UnitPrice: product.Price, Status: constants.OrderStatusPending,
	}).Error)

	svc := NewProfileService(store.users, store.addresses, store.orders, 5)
	profile, err := svc.Get(alice.ID)
	require.NoError(t, err)
	assert.Len(t, profile.Addresses, 1)
	assert.Len(t, profile.RecentOrders, 1)

	users, total, err := svc.ListUsers(repository.UserListFilter{Page: 1, PageSize: 10, Keyword: "ali"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alice", users[0].Username)
	_, _, err = svc.ListUsers(repository.UserListFilter{Status: "banned"})
	assert.ErrorIs(t, err, ErrUserStatusInvalid)

	ctx := context.Background()
	require.NoError(t, svc.DeleteUser(ctx, alice.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, alice.ID), ErrUserNotFound)

	var remaining int64
	require.NoError(t, store.db.Model(&models.Order{}).Where("user_id = ?", alice.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
	require.NoError(t, store.db.Model(&models.CartItem{}).Where("user_id = ?", alice.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
	require.NoError(t, store.db.Model(&models.Address{}).Where("user_id = ?", alice.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
