package router

import (
	"fmt"
	"strings"

	"github.com/dingcan-next/internal/cache"
	"github.com/dingcan-next/internal/config"
	adminhandlers "github.com/dingcan-next/internal/http/handlers/admin"
	publichandlers "github.com/dingcan-next/internal/http/handlers/public"
	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/provider"

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
		redisPrefix = "dc"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "common.rate_limited",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "common.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LocaleMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/packages", publicHandler.GetPackages)
			public.GET("/packages/:id", publicHandler.GetPackage)
			public.GET("/addons", publicHandler.GetAddons)
		}

		// 客户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 客户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.PUT("/me/password", publicHandler.ChangePassword)
			user.POST("/subscriptions", publicHandler.CreateSubscription)
			user.GET("/subscriptions", publicHandler.GetMySubscriptions)
			user.GET("/subscriptions/:id", publicHandler.GetMySubscription)
			user.POST("/subscriptions/:id/pause-meals", publicHandler.PauseMeals)
			user.GET("/deliveries", publicHandler.GetMyDeliveries)
			user.GET("/wallet", publicHandler.GetMyWallet)
			user.GET("/wallet/transactions", publicHandler.GetMyWalletTransactions)
			user.POST("/coupons/preview", publicHandler.PreviewCoupon)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				// 套餐与加购项管理
				authorized.GET("/packages", adminHandler.GetAdminPackages)
				authorized.GET("/packages/:id", adminHandler.GetAdminPackage)
				authorized.POST("/packages", adminHandler.CreatePackage)
				authorized.PUT("/packages/:id", adminHandler.UpdatePackage)
				authorized.DELETE("/packages/:id", adminHandler.DeletePackage)
				authorized.GET("/addons", adminHandler.GetAdminAddons)
				authorized.POST("/addons", adminHandler.CreateAddon)
				authorized.PUT("/addons/:id", adminHandler.UpdateAddon)
				authorized.DELETE("/addons/:id", adminHandler.DeleteAddon)

				// 订阅申请审核
				authorized.GET("/subscriptions", adminHandler.GetAdminSubscriptions)
				authorized.GET("/subscriptions/:id", adminHandler.GetAdminSubscription)
				authorized.POST("/subscriptions/:id/approve", adminHandler.ApproveSubscription)
				authorized.POST("/subscriptions/:id/reject", adminHandler.RejectSubscription)

				// 配送单管理
				authorized.GET("/deliveries", adminHandler.GetAdminDeliveries)
				authorized.GET("/deliveries/:id", adminHandler.GetAdminDelivery)
				authorized.POST("/deliveries/:id/assign", adminHandler.AssignCourier)
				authorized.POST("/deliveries/:id/unassign", adminHandler.UnassignCourier)
				authorized.PATCH("/deliveries/:id/status", adminHandler.UpdateDeliveryStatus)
				authorized.POST("/deliveries/sync", adminHandler.TriggerDeliverySync)

				// 配送员管理
				authorized.GET("/couriers", adminHandler.GetAdminCouriers)
				authorized.POST("/couriers", adminHandler.CreateCourier)
				authorized.PUT("/couriers/:id", adminHandler.UpdateCourier)
				authorized.DELETE("/couriers/:id", adminHandler.DeleteCourier)

				// 配送分组管理
				authorized.GET("/delivery-groups", adminHandler.GetAdminDeliveryGroups)
				authorized.POST("/delivery-groups", adminHandler.CreateDeliveryGroup)
				authorized.PUT("/delivery-groups/:id", adminHandler.UpdateDeliveryGroup)
				authorized.DELETE("/delivery-groups/:id", adminHandler.DeleteDeliveryGroup)

				// 客户管理
				authorized.GET("/users", adminHandler.GetAdminUsers)
				authorized.GET("/users/:id", adminHandler.GetAdminUser)
				authorized.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)

				// 钱包管理
				authorized.GET("/wallets/:user_id", adminHandler.GetAdminWallet)
				authorized.POST("/wallets/:user_id/adjust", adminHandler.AdjustAdminWallet)
				authorized.GET("/wallet-transactions", adminHandler.GetAdminWalletTransactions)

				// 优惠券管理
				authorized.GET("/coupons", adminHandler.GetAdminCoupons)
				authorized.GET("/coupons/:id", adminHandler.GetAdminCoupon)
				authorized.POST("/coupons", adminHandler.CreateCoupon)
				authorized.PUT("/coupons/:id", adminHandler.UpdateCoupon)
				authorized.DELETE("/coupons/:id", adminHandler.DeleteCoupon)

				// 配置管理
				authorized.GET("/settings", adminHandler.GetAdminSettings)
				authorized.GET("/settings/:key", adminHandler.GetAdminSetting)
				authorized.PUT("/settings/:key", adminHandler.UpdateAdminSetting)

				// 后台检索
				authorized.GET("/search/:collection/fields", adminHandler.GetSearchFields)
				authorized.GET("/search/:collection", adminHandler.SearchCollection)

				// 权限管理
				authorized.GET("/authz/roles", adminHandler.GetRoles)
				authorized.POST("/authz/roles", adminHandler.CreateRole)
				authorized.DELETE("/authz/roles/:role", adminHandler.DeleteRole)
				authorized.GET("/authz/roles/:role/policies", adminHandler.GetRolePolicies)
				authorized.POST("/authz/roles/:role/policies", adminHandler.GrantRolePolicy)
				authorized.DELETE("/authz/roles/:role/policies", adminHandler.RevokeRolePolicy)
				authorized.GET("/authz/admins/:id/roles", adminHandler.GetAdminRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAdminRoles)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
