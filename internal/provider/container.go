package provider

import (
	"github.com/dingcan-next/internal/authz"
	"github.com/dingcan-next/internal/cache"
	"github.com/dingcan-next/internal/config"
	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/queue"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo         repository.AdminRepository
	UserRepo          repository.UserRepository
	SubscriptionRepo  repository.SubscriptionRepository
	DeliveryRepo      repository.DeliveryRepository
	DeliveryGroupRepo repository.DeliveryGroupRepository
	CourierRepo       repository.CourierRepository
	MealPackageRepo   repository.MealPackageRepository
	WalletRepo        repository.WalletRepository
	CouponRepo        repository.CouponRepository
	SettingRepo       repository.SettingRepository
	DocumentStore     *repository.DocumentStore

	// Services
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	UserAuthService      *service.UserAuthService
	PackageService       *service.PackageService
	SubscriptionService  *service.SubscriptionService
	DeliveryService      *service.DeliveryService
	DeliverySyncService  *service.DeliverySyncService
	CourierService       *service.CourierService
	DeliveryGroupService *service.DeliveryGroupService
	WalletService        *service.WalletService
	CouponService        *service.CouponService
	SettingService       *service.SettingService
	SearchService        *service.SearchService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.SubscriptionRepo = repository.NewSubscriptionRepository(db)
	c.DeliveryRepo = repository.NewDeliveryRepository(db)
	c.DeliveryGroupRepo = repository.NewDeliveryGroupRepository(db)
	c.CourierRepo = repository.NewCourierRepository(db)
	c.MealPackageRepo = repository.NewMealPackageRepository(db)
	c.WalletRepo = repository.NewWalletRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.DocumentStore = repository.NewDocumentStore(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.Config, c.SettingRepo)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.PackageService = service.NewPackageService(c.MealPackageRepo)
	c.WalletService = service.NewWalletService(c.WalletRepo, c.UserRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.CourierService = service.NewCourierService(c.CourierRepo)
	c.DeliveryGroupService = service.NewDeliveryGroupService(c.DeliveryGroupRepo)
	c.DeliveryService = service.NewDeliveryService(c.DeliveryRepo, c.CourierRepo)

	c.DeliverySyncService = service.NewDeliverySyncService(c.SubscriptionRepo, c.DeliveryRepo, c.SettingService)

	var syncTrigger service.DeliverySyncTrigger
	if c.QueueClient != nil && c.QueueClient.Enabled() {
		syncTrigger = c.QueueClient
	}
	c.SubscriptionService = service.NewSubscriptionService(
		c.SubscriptionRepo,
		c.MealPackageRepo,
		c.DeliveryGroupRepo,
		c.WalletService,
		c.CouponService,
		syncTrigger,
	)

	c.SearchService = service.NewSearchService(c.DocumentStore)
}
