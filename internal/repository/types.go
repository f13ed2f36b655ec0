package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	Limit        int // 不分页时的条数上限
	CategoryID   uint
	Keyword      string
	ExcludeID    uint
	OnlyActive   bool
	OnlyFeatured bool
	WithCategory bool
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page         int
	PageSize     int
	Limit        int
	Keyword      string
	OnlyActive   bool
	OnlyFeatured bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page      int
	PageSize  int
	UserID    uint
	ProductID uint
	Status    string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}
