package admin

import (
	"errors"
	"strconv"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminDeliveries 获取配送单列表 (Admin)
func (h *Handler) GetAdminDeliveries(c *gin.Context) {
	page, pageSize := queryPagination(c)
	courierID, _ := strconv.ParseUint(c.Query("courier_id"), 10, 64)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	assignments, total, err := h.DeliveryService.List(repository.DeliveryAssignmentListFilter{
		UserID:    uint(userID),
		Window:    c.Query("window"),
		Status:    c.Query("status"),
		GroupName: c.Query("group_name"),
		CourierID: uint(courierID),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, assignments, response.NewPagination(page, pageSize, total))
}

// GetAdminDelivery 获取配送单详情 (Admin)
func (h *Handler) GetAdminDelivery(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	assignment, err := h.DeliveryService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, assignment)
}

// AssignCourierRequest 指派配送员请求
type AssignCourierRequest struct {
	CourierID uint `json:"courier_id" binding:"required"`
}

// AssignCourier 指派配送员
func (h *Handler) AssignCourier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req AssignCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	assignment, err := h.DeliveryService.AssignCourier(id, req.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			respondError(c, response.CodeNotFound, "common.not_found", nil)
		case errors.Is(err, service.ErrCourierNotFound):
			respondError(c, response.CodeNotFound, "common.not_found", nil)
		case errors.Is(err, service.ErrCourierInactive):
			respondError(c, response.CodeBadRequest, "common.invalid_params", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, assignment)
}

// UnassignCourier 取消指派
func (h *Handler) UnassignCourier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	assignment, err := h.DeliveryService.UnassignCourier(id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, assignment)
}

// DeliveryStatusRequest 更新配送状态请求
type DeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDeliveryStatus 更新配送单状态
func (h *Handler) UpdateDeliveryStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req DeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	assignment, err := h.DeliveryService.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDeliveryStatus):
			respondError(c, response.CodeBadRequest, "common.invalid_params", nil)
		case errors.Is(err, service.ErrAssignmentNotFound):
			respondError(c, response.CodeNotFound, "common.not_found", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, assignment)
}

// TriggerDeliverySync 手动触发一轮配送单同步
func (h *Handler) TriggerDeliverySync(c *gin.Context) {
	stats, err := h.DeliverySyncService.Sync()
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, gin.H{
		"created": stats.Created,
		"updated": stats.Updated,
		"removed": stats.Removed,
	})
}
