package admin

import (
	"errors"
	"time"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetAdminCoupons 获取优惠券列表 (Admin)
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	page, pageSize := queryPagination(c)

	filter := repository.CouponListFilter{
		Code:     c.Query("code"),
		Page:     page,
		PageSize: pageSize,
	}
	switch c.Query("is_active") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	coupons, total, err := h.CouponService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, coupons, response.NewPagination(page, pageSize, total))
}

// GetAdminCoupon 获取优惠券详情 (Admin)
func (h *Handler) GetAdminCoupon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	coupon, err := h.CouponService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			respondError(c, response.CodeNotFound, "coupon.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, coupon)
}

// CouponRequest 优惠券创建/更新请求
type CouponRequest struct {
	Code         string     `json:"code" binding:"required"`
	Type         string     `json:"type" binding:"required"`
	Value        float64    `json:"value" binding:"required"`
	MinAmount    float64    `json:"min_amount"`
	MaxDiscount  float64    `json:"max_discount"`
	UsageLimit   int        `json:"usage_limit"`
	PerUserLimit int        `json:"per_user_limit"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	IsActive     *bool      `json:"is_active"`
}

func (r CouponRequest) toInput() service.CouponInput {
	return service.CouponInput{
		Code:         r.Code,
		Type:         r.Type,
		Value:        models.NewMoneyFromDecimal(decimal.NewFromFloat(r.Value)),
		MinAmount:    models.NewMoneyFromDecimal(decimal.NewFromFloat(r.MinAmount)),
		MaxDiscount:  models.NewMoneyFromDecimal(decimal.NewFromFloat(r.MaxDiscount)),
		UsageLimit:   r.UsageLimit,
		PerUserLimit: r.PerUserLimit,
		StartsAt:     r.StartsAt,
		EndsAt:       r.EndsAt,
		IsActive:     r.IsActive,
	}
}

// CreateCoupon 创建优惠券
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	coupon, err := h.CouponService.Create(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrCouponCodeTaken) {
			respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	coupon, err := h.CouponService.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			respondError(c, response.CodeNotFound, "coupon.not_found", nil)
		case errors.Is(err, service.ErrCouponCodeTaken):
			respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券（软删除）
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.CouponService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			respondError(c, response.CodeNotFound, "coupon.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, nil)
}
