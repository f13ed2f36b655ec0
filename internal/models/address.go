package models

import "time"

// Address 收货地址，归属单个用户
type Address struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Location      string    `gorm:"size:150;not null" json:"location"` // 地址标签，如 Home / Office
	StreetAddress string    `gorm:"size:200;not null" json:"street_address"`
	City          string    `gorm:"size:150;not null" json:"city"`
	State         string    `gorm:"size:150;not null" json:"state"`
	CreatedAt     time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
