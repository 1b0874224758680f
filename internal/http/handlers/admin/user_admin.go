package admin

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers 获取客户列表 (Admin)
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, pageSize := queryPagination(c)

	users, total, err := h.UserAuthService.List(repository.UserListFilter{
		Keyword:  c.Query("search"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetAdminUser 获取客户详情 (Admin)
func (h *Handler) GetAdminUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, user)
}

// UserStatusRequest 客户状态变更请求
type UserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateUserStatus 启用/禁用客户账号
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	user, err := h.UserAuthService.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserStatus):
			respondError(c, response.CodeBadRequest, "common.invalid_params", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "common.not_found", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, user)
}
