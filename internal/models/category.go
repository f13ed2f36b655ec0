package models

import "time"

// Category 商品分类
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                      // 主键
	Title       string    `gorm:"size:50;not null" json:"title"`             // 分类名称
	Slug        string    `gorm:"size:100;uniqueIndex;not null" json:"slug"` // 唯一标识
	Description string    `gorm:"type:text" json:"description"`              // 描述
	Image       string    `gorm:"size:500" json:"image"`                     // 图片路径
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	IsFeatured  bool      `gorm:"not null;default:false;index" json:"is_featured"` // 是否在首页展示
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
