package admin

import (
	"strconv"

	"github.com/dingcan-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetRoles 获取角色列表
func (h *Handler) GetRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, roles)
}

// RoleRequest 角色创建请求
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateRole 创建角色
func (h *Handler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	response.Success(c, gin.H{"role": role})
}

// DeleteRole 删除角色及其全部策略
func (h *Handler) DeleteRole(c *gin.Context) {
	if err := h.AuthzService.DeleteRole(c.Param("role")); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	response.Success(c, nil)
}

// GetRolePolicies 获取角色的策略列表
func (h *Handler) GetRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	response.Success(c, policies)
}

// RolePolicyRequest 角色策略授予/撤销请求
type RolePolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GrantRolePolicy 为角色授予策略
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	if err := h.AuthzService.GrantRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	response.Success(c, nil)
}

// RevokeRolePolicy 撤销角色策略
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	response.Success(c, nil)
}

// GetAdminRoles 获取指定管理员的角色列表
func (h *Handler) GetAdminRoles(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || adminID == 0 {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(uint(adminID))
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, roles)
}

// AdminRolesRequest 管理员角色整体覆盖请求
type AdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// SetAdminRoles 覆盖指定管理员的角色绑定
func (h *Handler) SetAdminRoles(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || adminID == 0 {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	var req AdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(uint(adminID), req.Roles); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	response.Success(c, nil)
}
