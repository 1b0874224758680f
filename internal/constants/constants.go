package constants

// 订阅申请状态常量
const (
	SubscriptionStatusPending  = "pending"
	SubscriptionStatusApproved = "approved"
	SubscriptionStatusRejected = "rejected"
	SubscriptionStatusExpired  = "expired"
)

// 餐别常量
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
)

// 配送波次常量
// 早班波次合并早餐与午餐，键沿用 breakfast；lunch 仅作为历史遗留键用于清理
const (
	DeliveryWindowBreakfast = "breakfast"
	DeliveryWindowLunch     = "lunch"
	DeliveryWindowDinner    = "dinner"
)

// 配送单状态常量
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusAssigned  = "assigned"
	DeliveryStatusEnRoute   = "en-route"
	DeliveryStatusDelivered = "delivered"
)

// 分组兜底名称
const (
	DeliveryGroupFallback = "Ungrouped"
)

// 钱包交易类型常量
const (
	WalletTxnTypeRecharge        = "recharge"
	WalletTxnTypeSubscriptionPay = "subscription_pay"
	WalletTxnTypeAdminAdjust     = "admin_adjust"
	WalletTxnTypeAdminRefund     = "admin_refund"
)

// 钱包交易方向常量
const (
	WalletTxnDirectionIn  = "in"
	WalletTxnDirectionOut = "out"
)

// 优惠券类型常量
const (
	CouponTypeFixed   = "fixed"
	CouponTypePercent = "percent"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskDeliverySync       = "delivery:sync"
	TaskSubscriptionExpire = "subscription:expire"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "dc"
)

// 设置键常量
const (
	SettingKeySiteConfig     = "site_config"
	SettingKeyDeliveryConfig = "delivery_config"
	SettingFieldHubLat       = "hub_lat"
	SettingFieldHubLng       = "hub_lng"
)

// 币种常量
const (
	SiteCurrencyDefault = "CNY"
)

// 站点语言常量
const (
	LocaleZhCN = "zh-CN"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleZhCN, LocaleEnUS}
