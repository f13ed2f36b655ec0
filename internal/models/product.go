package models

import "time"

// Product 商品
type Product struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                // 主键
	CategoryID        uint      `gorm:"not null;index" json:"category_id"`                   // 分类ID
	Title             string    `gorm:"size:150;not null" json:"title"`                      // 标题
	Slug              string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`           // 唯一标识
	SKU               string    `gorm:"column:sku;size:100;uniqueIndex;not null" json:"sku"` // 商品编码
	ShortDescription  string    `gorm:"type:text" json:"short_description"`                  // 简介
	DetailDescription string    `gorm:"type:text" json:"detail_description"`                 // 详情
	Image             string    `gorm:"size:500" json:"image"`                               // 图片路径
	Price             Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`  // 单价
	IsActive          bool      `gorm:"not null;index" json:"is_active"`                     // 是否上架
	IsFeatured        bool      `gorm:"not null;default:false;index" json:"is_featured"`     // 是否首页推荐
	CreatedAt         time.Time `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                          // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
