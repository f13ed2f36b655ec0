package constants

// 订单状态常量（与店铺后台展示文案一致）
const (
	OrderStatusPending   = "Pending"
	OrderStatusAccepted  = "Accepted"
	OrderStatusPacked    = "Packed"
	OrderStatusOnTheWay  = "On The Way"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// OrderStatuses 全部订单状态，按流转顺序
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusPacked,
	OrderStatusOnTheWay,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 缓存键前缀
const (
	CacheKeyCatalogPrefix = "catalog:"
	CacheKeyHome          = "catalog:home"
	CacheKeyCategories    = "catalog:categories"
	CacheKeyProductPrefix = "catalog:product:"
)

// 异步任务类型
const (
	TaskOrderPlaced = "order:placed"
)

// 领域事件路由键
const (
	EventOrderPlaced = "order.placed"
)
