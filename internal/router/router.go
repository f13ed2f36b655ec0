package router

import (
	"fmt"
	"strings"

	"github.com/dujiao-next/estore/internal/cache"
	"github.com/dujiao-next/estore/internal/config"
	adminhandlers "github.com/dujiao-next/estore/internal/http/handlers/admin"
	publichandlers "github.com/dujiao-next/estore/internal/http/handlers/public"
	"github.com/dujiao-next/estore/internal/http/response"
	"github.com/dujiao-next/estore/internal/i18n"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/metrics"
	"github.com/dujiao-next/estore/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "estore"
	}
	redisClient := cache.Client()
	authRule := func(name string) RateLimitRule {
		return RateLimitRule{
			Prefix:        fmt.Sprintf("%s:rate:%s", redisPrefix, name),
			WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
			MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
			BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		}
	}
	byUsername := KeyByIPAndJSONField("username")

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(MetricsMiddleware())
		metricsPath := strings.TrimSpace(cfg.Metrics.Path)
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		r.GET(metricsPath, gin.WrapH(metrics.Handler()))
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, response.CodeNotFound, i18n.T(i18n.ResolveLocale(ctx), "error.not_found"))
	})

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", func(ctx *gin.Context) {
			response.Success(ctx, gin.H{"status": "ok"})
		})

		// 商品目录（游客可访问）
		apiV1.GET("/home", publicHandler.GetHome)
		apiV1.GET("/categories", publicHandler.ListCategories)
		apiV1.GET("/categories/:slug/products", publicHandler.ListCategoryProducts)
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:slug", publicHandler.GetProduct)

		// 用户认证
		auth := apiV1.Group("/auth")
		{
			auth.GET("/captcha", publicHandler.GetImageCaptcha)
			auth.POST("/register", RateLimitMiddleware(redisClient, authRule("register"), byUsername), publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, authRule("login"), byUsername), publicHandler.UserLogin)
		}

		// 顾客接口
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.PUT("/me/password", publicHandler.ChangePassword)

			user.GET("/addresses", publicHandler.ListAddresses)
			user.POST("/addresses", publicHandler.CreateAddress)
			user.DELETE("/addresses/:id", publicHandler.DeleteAddress)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.POST("/cart/items/:id/increment", publicHandler.IncrementCartItem)
			user.POST("/cart/items/:id/decrement", publicHandler.DecrementCartItem)
			user.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)

			user.POST("/orders/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
		}

		// 管理后台
		apiV1.POST("/admin/login", RateLimitMiddleware(redisClient, authRule("admin_login"), byUsername), adminHandler.AdminLogin)

		adminAuthed := apiV1.Group("/admin")
		adminAuthed.Use(AdminJWTAuthMiddleware(c.AuthService))
		adminAuthed.GET("/me", adminHandler.GetAdminMe)

		admin := adminAuthed.Group("")
		admin.Use(AdminRBACMiddleware(c.AuthzService))
		{
			admin.GET("/categories", adminHandler.GetAdminCategories)
			admin.GET("/categories/:id", adminHandler.GetAdminCategory)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/products", adminHandler.GetAdminProducts)
			admin.GET("/products/:id", adminHandler.GetAdminProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/orders", adminHandler.GetAdminOrders)
			admin.GET("/orders/:id", adminHandler.GetAdminOrder)

			admin.GET("/users", adminHandler.GetAdminUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/authz/roles", adminHandler.ListAuthzRoles)
			admin.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
			admin.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
			admin.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
			admin.GET("/authz/admins", adminHandler.ListAuthzAdmins)
			admin.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
			admin.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
		}
	}

	return r
}
