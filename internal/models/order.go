package models

import "time"

// Order 订单，每个购物车行结算为一条订单
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                             // 主键
	UserID    uint      `gorm:"not null;index:idx_orders_user_created,priority:1" json:"user_id"` // 用户ID
	AddressID *uint     `gorm:"index" json:"address_id"`                                          // 收货地址，地址删除后置空
	ProductID uint      `gorm:"not null;index" json:"product_id"`                                 // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                         // 数量
	UnitPrice Money     `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`          // 下单时单价快照
	Status    string    `gorm:"size:50;not null;default:'Pending';index" json:"status"`           // 订单状态
	CreatedAt time.Time `gorm:"index:idx_orders_user_created,priority:2" json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Address *Address `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL" json:"address,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// Total 订单金额 = 数量 × 快照单价
func (o *Order) Total() Money {
	if o == nil {
		return ZeroMoney()
	}
	return o.UnitPrice.Times(o.Quantity)
}
