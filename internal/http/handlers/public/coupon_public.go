package public

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CouponPreviewRequest 优惠券试算请求
type CouponPreviewRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// PreviewCoupon 试算优惠后金额，不消耗使用次数
func (h *Handler) PreviewCoupon(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CouponPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Amount))
	discounted, err := h.CouponService.Preview(req.Code, userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			respondError(c, response.CodeNotFound, "coupon.not_found", nil)
		case errors.Is(err, service.ErrCouponInactive),
			errors.Is(err, service.ErrCouponExpired):
			respondError(c, response.CodeBadRequest, "coupon.expired", nil)
		case errors.Is(err, service.ErrCouponExhausted),
			errors.Is(err, service.ErrCouponUserLimit):
			respondError(c, response.CodeBadRequest, "coupon.exhausted", nil)
		case errors.Is(err, service.ErrCouponMinAmount):
			respondError(c, response.CodeBadRequest, "coupon.min_amount", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, gin.H{
		"code":     req.Code,
		"original": amount,
		"payable":  discounted,
	})
}
