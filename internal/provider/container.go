package provider

import (
	"github.com/dujiao-next/estore/internal/authz"
	"github.com/dujiao-next/estore/internal/cache"
	"github.com/dujiao-next/estore/internal/config"
	"github.com/dujiao-next/estore/internal/events"
	"github.com/dujiao-next/estore/internal/logger"
	"github.com/dujiao-next/estore/internal/queue"
	"github.com/dujiao-next/estore/internal/repository"
	"github.com/dujiao-next/estore/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config         *config.Config
	DB             *gorm.DB
	QueueClient    *queue.Client
	EventPublisher events.Publisher

	// Repositories
	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	AddressRepo  repository.AddressRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	UserAuthService     *service.UserAuthService
	CaptchaService      *service.CaptchaService
	EmailService        *service.EmailService
	NotificationService *service.NotificationService
	CatalogService      *service.CatalogService
	CategoryService     *service.CategoryService
	ProductService      *service.ProductService
	AddressService      *service.AddressService
	CartService         *service.CartService
	OrderService        *service.OrderService
	ProfileService      *service.ProfileService
}

// NewContainer 初始化容器，db 为已迁移的数据库连接
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端，未启用时为空操作客户端
	queueClient, err := queue.NewClient(&cfg.Queue, queue.ClientOptions{
		Queue:          cfg.Shop.OrderNotifyQueue,
		MaxRetry:       cfg.Shop.OrderNotifyMaxRetry,
		TimeoutSeconds: cfg.Shop.OrderNotifyTimeoutSeconds,
	})
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		return nil, err
	}

	publisher, err := events.NewPublisher(&cfg.Events)
	if err != nil {
		// 事件总线不可用时降级为空发布器，不影响下单
		logger.Warnw("provider_init_event_publisher_failed", "error", err)
		publisher = events.NopPublisher{}
	}

	c := &Container{
		Config:         cfg,
		DB:             db,
		QueueClient:    queueClient,
		EventPublisher: publisher,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories() {
	db := c.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() error {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		return err
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		return err
	}
	c.AuthzService = authzService

	cfg := c.Config
	c.AuthService = service.NewAuthService(cfg, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(cfg, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	c.EmailService = service.NewEmailService(&cfg.Email)
	c.NotificationService = service.NewNotificationService(c.EmailService, cfg.Shop.OrderNotifyEmailSubjectFmt)
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ProductRepo, cfg.Shop)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.AddressRepo, cfg.Shop.ShippingFeeAmount())
	c.OrderService = service.NewOrderService(c.DB, c.OrderRepo, c.CartRepo, c.AddressRepo, c.QueueClient)
	c.ProfileService = service.NewProfileService(c.UserRepo, c.AddressRepo, c.OrderRepo, cfg.Shop.ProfileRecentOrderLimit)
	return nil
}

// Close 释放外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			logger.Warnw("provider_close_event_publisher_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
