package admin

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminCouriers 获取配送员列表 (Admin)
func (h *Handler) GetAdminCouriers(c *gin.Context) {
	page, pageSize := queryPagination(c)

	couriers, total, err := h.CourierService.List(repository.CourierListFilter{
		ActiveOnly: c.Query("active_only") == "true",
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, couriers, response.NewPagination(page, pageSize, total))
}

// CourierRequest 配送员创建/更新请求
type CourierRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

// CreateCourier 创建配送员
func (h *Handler) CreateCourier(c *gin.Context) {
	var req CourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	courier, err := h.CourierService.Create(service.CourierInput{
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, courier)
}

// UpdateCourier 更新配送员
func (h *Handler) UpdateCourier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	courier, err := h.CourierService.Update(id, service.CourierInput{
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrCourierNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, courier)
}

// DeleteCourier 删除配送员
func (h *Handler) DeleteCourier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.CourierService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCourierNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, nil)
}
