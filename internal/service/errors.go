package service

import "errors"

// 服务层哨兵错误，供处理器按 errors.Is 映射到响应码
var (
	ErrNotFound           = errors.New("资源不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidPassword    = errors.New("密码错误")
	ErrWeakPassword       = errors.New("密码强度不足")
	ErrUserDisabled       = errors.New("账号已禁用")
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrInvalidUserStatus  = errors.New("账号状态无效")

	ErrPackageNotFound  = errors.New("套餐不存在")
	ErrPackageInactive  = errors.New("套餐已下架")
	ErrAddonNotFound    = errors.New("加购项不存在")
	ErrInvalidDateRange = errors.New("日期范围无效")
	ErrNoMealSelection  = errors.New("至少选择一项订餐")

	ErrSubscriptionNotFound   = errors.New("订阅申请不存在")
	ErrSubscriptionNotOwned   = errors.New("无权操作该订阅申请")
	ErrSubscriptionNotPending = errors.New("订阅申请不在待审核状态")

	ErrAssignmentNotFound    = errors.New("配送单不存在")
	ErrInvalidDeliveryStatus = errors.New("配送状态无效")
	ErrCourierNotFound       = errors.New("配送员不存在")
	ErrCourierInactive       = errors.New("配送员已停用")
	ErrGroupNotFound         = errors.New("配送分组不存在")

	ErrWalletNotFound      = errors.New("钱包不存在")
	ErrWalletInvalidAmount = errors.New("金额无效")
	ErrInsufficientBalance = errors.New("余额不足")

	ErrCouponNotFound    = errors.New("优惠券不存在")
	ErrCouponInactive    = errors.New("优惠券未启用")
	ErrCouponExpired     = errors.New("优惠券不在有效期内")
	ErrCouponExhausted   = errors.New("优惠券已被领完")
	ErrCouponMinAmount   = errors.New("未达到优惠券使用门槛")
	ErrCouponUserLimit   = errors.New("已达到该券的个人使用上限")
	ErrCouponCodeTaken   = errors.New("优惠码已存在")

	ErrUnknownCollection = errors.New("未登记的检索集合")
	ErrUnknownField      = errors.New("未登记的检索字段")
)
