package models

import "time"

// User 顾客账号
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`                          // 主键
	Username     string     `gorm:"size:150;uniqueIndex;not null" json:"username"` // 登录名
	Email        string     `gorm:"size:254;uniqueIndex;not null" json:"email"`    // 邮箱
	PasswordHash string     `gorm:"not null" json:"-"`                             // 密码哈希
	Status       string     `gorm:"size:20;not null;default:'active'" json:"status"`
	TokenVersion uint64     `gorm:"not null;default:0" json:"-"` // Token 版本，改密后递增使旧 Token 失效
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
