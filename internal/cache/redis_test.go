package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dujiao-next/estore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	require.NoError(t, InitRedis(&config.RedisConfig{Enabled: false}))
	ctx := context.Background()

	assert.False(t, Enabled())
	assert.Nil(t, Client())
	require.NoError(t, SetJSON(ctx, "catalog:home", map[string]int{"a": 1}, time.Minute))

	var dest map[string]int
	hit, err := GetJSON(ctx, "catalog:home", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, DelPrefix(ctx, "catalog:"))
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	require.NoError(t, InitRedis(&config.RedisConfig{Enabled: true, Prefix: "shop"}))
	t.Cleanup(func() { _ = Close() })

	assert.Equal(t, "shop:catalog:home", BuildKey(" catalog:home "))
	assert.Equal(t, "shop", BuildKey(""))
}

func TestAuthStateMissWhenDisabled(t *testing.T) {
	require.NoError(t, InitRedis(&config.RedisConfig{Enabled: false}))
	ctx := context.Background()

	require.NoError(t, SetUserAuthState(ctx, &UserAuthState{UserID: 3, Status: "active", TokenVersion: 2}))
	state, hit, err := GetUserAuthState(ctx, 3)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, state)

	state, hit, err = GetUserAuthState(ctx, 0)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, state)
	assert.Equal(t, "auth:admin:9", authStateKey(adminAuthStatePrefix, 9))
}
