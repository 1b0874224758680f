package admin

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminSubscriptions 获取订阅申请列表 (Admin)
func (h *Handler) GetAdminSubscriptions(c *gin.Context) {
	page, pageSize := queryPagination(c)

	requests, total, err := h.SubscriptionService.List(repository.SubscriptionListFilter{
		Status:   c.Query("status"),
		Keyword:  c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, requests, response.NewPagination(page, pageSize, total))
}

// GetAdminSubscription 获取订阅申请详情 (Admin)
func (h *Handler) GetAdminSubscription(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	request, err := h.SubscriptionService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respondError(c, response.CodeNotFound, "subscription.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, request)
}

// ApproveSubscription 批准订阅申请：扣款并触发配送同步
func (h *Handler) ApproveSubscription(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	request, err := h.SubscriptionService.Approve(id, adminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondError(c, response.CodeNotFound, "subscription.not_found", nil)
		case errors.Is(err, service.ErrSubscriptionNotPending):
			respondError(c, response.CodeBadRequest, "subscription.not_pending", nil)
		case errors.Is(err, service.ErrInsufficientBalance):
			respondError(c, response.CodeBadRequest, "wallet.insufficient_balance", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, request)
}

// RejectSubscriptionRequest 驳回请求
type RejectSubscriptionRequest struct {
	Reason string `json:"reason"`
}

// RejectSubscription 驳回订阅申请
func (h *Handler) RejectSubscription(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RejectSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	request, err := h.SubscriptionService.Reject(id, adminID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondError(c, response.CodeNotFound, "subscription.not_found", nil)
		case errors.Is(err, service.ErrSubscriptionNotPending):
			respondError(c, response.CodeBadRequest, "subscription.not_pending", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, request)
}
