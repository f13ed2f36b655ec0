package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Please log in first",
		"error.forbidden":              "Permission denied",
		"error.not_found":              "Resource not found",
		"error.internal":               "Internal server error",
		"error.too_many_requests":      "Too many attempts, please try again later",
		"error.too_many_requests_wait": "Too many attempts, please retry in %d seconds",
		"error.user_fetch_failed":      "Failed to load users",
		"error.user_delete_failed":     "Failed to delete user",
		"error.token_invalid":          "Login expired, please log in again",
		"error.user_disabled":          "Account is disabled",
		"error.id_invalid":             "Invalid id",
		"error.product_not_found":      "Product not found",
		"error.category_not_found":     "Category not found",
		"error.cart_item_not_found":    "Cart item not found",
		"error.address_not_found":      "Address not found",
		"error.order_not_found":        "Order not found",
		"error.admin_not_found":        "Admin not found",
		"error.address_invalid":        "Please fill in all address fields (street address up to %d characters, others up to %d)",
		"error.cart_empty":             "Your cart is empty",
		"error.cart_fetch_failed":      "Failed to load cart",
		"error.cart_update_failed":     "Failed to update cart",
		"error.checkout_failed":        "Checkout failed",
		"error.order_fetch_failed":     "Failed to load orders",
		"error.address_failed":         "Failed to save address",
		"error.profile_failed":         "Failed to load profile",
		"error.catalog_failed":         "Failed to load catalog",
		"error.username_invalid":       "Username must be 3-150 characters: letters, digits and @/./+/-/_ only",
		"error.username_exists":        "Username already taken",
		"error.email_invalid":          "Invalid email address",
		"error.email_exists":           "Email already registered",
		"error.password_mismatch":      "The two passwords do not match",
		"error.password_weak":          "Password is too weak",
		"error.password_too_short":     "Password must be at least %d characters",
		"error.password_upper":         "Password must contain an uppercase letter",
		"error.password_lower":         "Password must contain a lowercase letter",
		"error.password_number":        "Password must contain a digit",
		"error.password_special":       "Password must contain a special character",
		"error.password_old_wrong":     "Current password is incorrect",
		"error.password_failed":        "Failed to change password",
		"error.register_failed":        "Registration failed",
		"error.login_invalid":          "Incorrect username or password",
		"error.login_failed":           "Login failed",
		"error.captcha_required":       "Please complete the captcha",
		"error.captcha_invalid":        "Captcha is incorrect",
		"error.captcha_failed":         "Failed to generate captcha",
		"error.captcha_disabled":       "Captcha is not enabled",
		"error.slug_exists":            "Slug already exists",
		"error.sku_exists":             "SKU already exists",
		"error.category_in_use":        "Category still has products",
		"error.product_in_use":         "Product is referenced by orders",
		"error.category_invalid":       "Invalid category data",
		"error.product_invalid":        "Invalid product data",
		"error.price_invalid":          "Invalid price",
		"error.save_failed":            "Save failed",
		"error.delete_failed":          "Delete failed",
		"error.order_status":           "Invalid order status",
		"error.user_status":            "Invalid user status",
		"error.user_not_found":         "User not found",
		"error.role_invalid":           "Invalid role",
		"error.policy_invalid":         "Invalid policy",
		"error.authz_failed":           "Permission update failed",
	},
	LocaleZH: {
		"error.bad_request":            "请求参数错误",
		"error.unauthorized":           "请先登录",
		"error.forbidden":              "无权限访问",
		"error.not_found":              "资源不存在",
		"error.internal":               "服务器内部错误",
		"error.too_many_requests":      "尝试次数过多，请稍后再试",
		"error.too_many_requests_wait": "尝试次数过多，请 %d 秒后再试",
		"error.user_fetch_failed":      "获取用户失败",
		"error.user_delete_failed":     "删除用户失败",
		"error.token_invalid":          "登录已失效，请重新登录",
		"error.user_disabled":          "账号已被禁用",
		"error.id_invalid":             "ID 无效",
		"error.product_not_found":      "商品不存在",
		"error.category_not_found":     "分类不存在",
		"error.cart_item_not_found":    "购物车项不存在",
		"error.address_not_found":      "地址不存在",
		"error.order_not_found":        "订单不存在",
		"error.admin_not_found":        "管理员不存在",
		"error.address_invalid":        "请完整填写地址（街道地址最多 %d 个字符，其余每项最多 %d 个字符）",
		"error.cart_empty":             "购物车为空",
		"error.cart_fetch_failed":      "获取购物车失败",
		"error.cart_update_failed":     "更新购物车失败",
		"error.checkout_failed":        "结算失败",
		"error.order_fetch_failed":     "获取订单失败",
		"error.address_failed":         "保存地址失败",
		"error.profile_failed":         "获取个人资料失败",
		"error.catalog_failed":         "获取商品目录失败",
		"error.username_invalid":       "用户名需为 3-150 个字符，仅限字母、数字和 @/./+/-/_",
		"error.username_exists":        "用户名已被占用",
		"error.email_invalid":          "邮箱格式错误",
		"error.email_exists":           "邮箱已注册",
		"error.password_mismatch":      "两次输入的密码不一致",
		"error.password_weak":          "密码强度不足",
		"error.password_too_short":     "密码长度至少 %d 位",
		"error.password_upper":         "密码需包含大写字母",
		"error.password_lower":         "密码需包含小写字母",
		"error.password_number":        "密码需包含数字",
		"error.password_special":       "密码需包含特殊字符",
		"error.password_old_wrong":     "当前密码错误",
		"error.password_failed":        "修改密码失败",
		"error.register_failed":        "注册失败",
		"error.login_invalid":          "用户名或密码错误",
		"error.login_failed":           "登录失败",
		"error.captcha_required":       "请完成验证码",
		"error.captcha_invalid":        "验证码错误",
		"error.captcha_failed":         "生成验证码失败",
		"error.captcha_disabled":       "验证码未启用",
		"error.slug_exists":            "Slug 已存在",
		"error.sku_exists":             "SKU 已存在",
		"error.category_in_use":        "分类下仍有商品",
		"error.product_in_use":         "商品已被订单引用",
		"error.category_invalid":       "分类数据无效",
		"error.product_invalid":        "商品数据无效",
		"error.price_invalid":          "价格无效",
		"error.save_failed":            "保存失败",
		"error.delete_failed":          "删除失败",
		"error.order_status":           "订单状态无效",
		"error.user_status":            "用户状态无效",
		"error.user_not_found":         "用户不存在",
		"error.role_invalid":           "角色无效",
		"error.policy_invalid":         "权限策略无效",
		"error.authz_failed":           "权限更新失败",
	},
}
