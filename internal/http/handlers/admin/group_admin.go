package admin

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminDeliveryGroups 获取配送分组列表 (Admin)
func (h *Handler) GetAdminDeliveryGroups(c *gin.Context) {
	groups, err := h.DeliveryGroupService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, groups)
}

// DeliveryGroupRequest 配送分组创建/更新请求
type DeliveryGroupRequest struct {
	Name         string `json:"name" binding:"required"`
	CategoryName string `json:"category_name"`
	LocationName string `json:"location_name"`
	SortOrder    int    `json:"sort_order"`
}

// CreateDeliveryGroup 创建配送分组
func (h *Handler) CreateDeliveryGroup(c *gin.Context) {
	var req DeliveryGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	group, err := h.DeliveryGroupService.Create(service.DeliveryGroupInput{
		Name:         req.Name,
		CategoryName: req.CategoryName,
		LocationName: req.LocationName,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, group)
}

// UpdateDeliveryGroup 更新配送分组
func (h *Handler) UpdateDeliveryGroup(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req DeliveryGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	group, err := h.DeliveryGroupService.Update(id, service.DeliveryGroupInput{
		Name:         req.Name,
		CategoryName: req.CategoryName,
		LocationName: req.LocationName,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, group)
}

// DeleteDeliveryGroup 删除配送分组
func (h *Handler) DeleteDeliveryGroup(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.DeliveryGroupService.Delete(id); err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, nil)
}
