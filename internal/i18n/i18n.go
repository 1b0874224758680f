package i18n

import (
	"strings"

	"github.com/dingcan-next/internal/constants"
)

// messages 按语言组织的文案表
var messages = map[string]map[string]string{
	constants.LocaleZhCN: {
		"common.success":        "成功",
		"common.invalid_params": "参数错误",
		"common.unauthorized":   "未登录或登录已过期",
		"common.forbidden":      "没有权限执行该操作",
		"common.not_found":      "资源不存在",
		"common.internal_error": "服务器内部错误",
		"common.rate_limited":   "操作过于频繁，请稍后再试",

		"auth.invalid_credentials": "用户名或密码错误",
		"auth.user_disabled":       "账号已被禁用",
		"auth.weak_password":       "密码强度不足",
		"auth.email_taken":         "邮箱已被注册",

		"subscription.not_found":   "订阅申请不存在",
		"subscription.not_pending": "订阅申请不在待审核状态",
		"subscription.no_meals":    "至少选择一项订餐",

		"wallet.insufficient_balance": "余额不足",
		"wallet.invalid_amount":       "金额无效",

		"coupon.not_found":  "优惠券不存在",
		"coupon.expired":    "优惠券不在有效期内",
		"coupon.exhausted":  "优惠券已被领完",
		"coupon.min_amount": "未达到优惠券使用门槛",
	},
	constants.LocaleEnUS: {
		"common.success":        "success",
		"common.invalid_params": "invalid parameters",
		"common.unauthorized":   "authentication required",
		"common.forbidden":      "permission denied",
		"common.not_found":      "resource not found",
		"common.internal_error": "internal server error",
		"common.rate_limited":   "too many requests, please retry later",

		"auth.invalid_credentials": "invalid username or password",
		"auth.user_disabled":       "account disabled",
		"auth.weak_password":       "password is too weak",
		"auth.email_taken":         "email already registered",

		"subscription.not_found":   "subscription request not found",
		"subscription.not_pending": "subscription request is not pending review",
		"subscription.no_meals":    "at least one meal selection is required",

		"wallet.insufficient_balance": "insufficient balance",
		"wallet.invalid_amount":       "invalid amount",

		"coupon.not_found":  "coupon not found",
		"coupon.expired":    "coupon is not in its validity window",
		"coupon.exhausted":  "coupon has been fully redeemed",
		"coupon.min_amount": "order amount below coupon threshold",
	},
}

// T 按语言取文案，语言或键缺失时依次回退到支持语言列表，最终回退到键本身
func T(locale, key string) string {
	locale = Resolve(locale)
	if table, ok := messages[locale]; ok {
		if message, ok := table[key]; ok {
			return message
		}
	}
	for _, fallback := range constants.SupportedLocales {
		if fallback == locale {
			continue
		}
		if message, ok := messages[fallback][key]; ok {
			return message
		}
	}
	return key
}

// Resolve 规范化语言标识：大小写不敏感，支持 zh/en 短前缀，未知时取默认语言
func Resolve(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return constants.SupportedLocales[0]
	}
	for _, supported := range constants.SupportedLocales {
		if strings.EqualFold(locale, supported) {
			return supported
		}
	}
	lower := strings.ToLower(locale)
	switch {
	case strings.HasPrefix(lower, "zh"):
		return constants.LocaleZhCN
	case strings.HasPrefix(lower, "en"):
		return constants.LocaleEnUS
	}
	return constants.SupportedLocales[0]
}
