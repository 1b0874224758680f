package repository

import "time"

// UserListFilter 客户列表过滤
type UserListFilter struct {
	Keyword  string // 邮箱/昵称/电话模糊匹配
	Status   string
	Page     int
	PageSize int
}

// MealPackageListFilter 套餐列表过滤
type MealPackageListFilter struct {
	Keyword    string
	ActiveOnly bool
	Page       int
	PageSize   int
}

// SubscriptionListFilter 订阅申请列表过滤
type SubscriptionListFilter struct {
	UserID      uint
	Status      string
	Keyword     string // 收餐人/地址模糊匹配
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

// DeliveryAssignmentListFilter 配送单列表过滤
type DeliveryAssignmentListFilter struct {
	UserID    uint
	Window    string
	Status    string
	GroupName string
	CourierID uint
	Page      int
	PageSize  int
}

// CourierListFilter 配送员列表过滤
type CourierListFilter struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

// WalletTransactionListFilter 钱包流水列表过滤
type WalletTransactionListFilter struct {
	UserID      uint
	Type        string
	Direction   string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

// CouponListFilter 优惠券列表过滤
type CouponListFilter struct {
	Code     string
	IsActive *bool
	Page     int
	PageSize int
}
