package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/dujiao-next/estore/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// 鉴权快照键前缀，后接主体 ID
const (
	userAuthStatePrefix  = "auth:user:"
	adminAuthStatePrefix = "auth:admin:"
)

// UserAuthState 用户鉴权快照，中间件命中时免查库
type UserAuthState struct {
	UserID       uint   `json:"user_id"`
	Status       string `json:"status"`
	TokenVersion uint64 `json:"token_version"`
}

// AdminAuthState 管理员鉴权快照
type AdminAuthState struct {
	AdminID      uint   `json:"admin_id"`
	TokenVersion uint64 `json:"token_version"`
	IsSuper      bool   `json:"is_super"`
}

// BuildUserAuthState 从用户模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{UserID: user.ID, Status: user.Status, TokenVersion: user.TokenVersion}
}

// BuildAdminAuthState 从管理员模型构建鉴权快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	return &AdminAuthState{AdminID: admin.ID, TokenVersion: admin.TokenVersion, IsSuper: admin.IsSuper}
}

func authStateKey(prefix string, id uint) string {
	return prefix + strconv.FormatUint(uint64(id), 10)
}

func loadAuthState[T any](ctx context.Context, prefix string, id uint) (*T, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	state := new(T)
	hit, err := GetJSON(ctx, authStateKey(prefix, id), state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return state, true, nil
}

// GetUserAuthState 读取用户鉴权快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	return loadAuthState[UserAuthState](ctx, userAuthStatePrefix, userID)
}

// SetUserAuthState 写入用户鉴权快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, authStateKey(userAuthStatePrefix, state.UserID), state, authStateCacheTTL)
}

// GetAdminAuthState 读取管理员鉴权快照
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	return loadAuthState[AdminAuthState](ctx, adminAuthStatePrefix, adminID)
}

// SetAdminAuthState 写入管理员鉴权快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, authStateKey(adminAuthStatePrefix, state.AdminID), state, authStateCacheTTL)
}

// DelUserAuthState 删除用户鉴权快照
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, authStateKey(userAuthStatePrefix, userID))
}
