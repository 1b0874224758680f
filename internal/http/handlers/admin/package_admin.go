package admin

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetAdminPackages 获取套餐列表 (Admin)
func (h *Handler) GetAdminPackages(c *gin.Context) {
	page, pageSize := queryPagination(c)
	keyword := c.Query("search")
	activeOnly := c.Query("active_only") == "true"

	packages, total, err := h.PackageService.List(repository.MealPackageListFilter{
		Keyword:    keyword,
		ActiveOnly: activeOnly,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, packages, response.NewPagination(page, pageSize, total))
}

// GetAdminPackage 获取套餐详情 (Admin)
func (h *Handler) GetAdminPackage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	pkg, err := h.PackageService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, pkg)
}

// PackageRequest 套餐创建/更新请求
type PackageRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	MealTypes    []string `json:"meal_types" binding:"required"`
	Price        float64  `json:"price" binding:"required"`
	DurationDays int      `json:"duration_days"`
	IsActive     *bool    `json:"is_active"`
	SortOrder    int      `json:"sort_order"`
}

func (r PackageRequest) toInput() service.PackageInput {
	return service.PackageInput{
		Name:         r.Name,
		Description:  r.Description,
		MealTypes:    r.MealTypes,
		Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(r.Price)),
		DurationDays: r.DurationDays,
		IsActive:     r.IsActive,
		SortOrder:    r.SortOrder,
	}
}

// CreatePackage 创建套餐
func (h *Handler) CreatePackage(c *gin.Context) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	pkg, err := h.PackageService.Create(req.toInput())
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, pkg)
}

// UpdatePackage 更新套餐
func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	pkg, err := h.PackageService.Update(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, pkg)
}

// DeletePackage 删除套餐（软删除）
func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.PackageService.Delete(id); err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, nil)
}

// GetAdminAddons 获取加购项列表 (Admin)
func (h *Handler) GetAdminAddons(c *gin.Context) {
	addons, err := h.PackageService.ListAddons(false)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, addons)
}

// AddonRequest 加购项创建/更新请求
type AddonRequest struct {
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	IsActive  *bool   `json:"is_active"`
	SortOrder int     `json:"sort_order"`
}

func (r AddonRequest) toInput() service.AddonInput {
	return service.AddonInput{
		Name:      r.Name,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(r.Price)),
		IsActive:  r.IsActive,
		SortOrder: r.SortOrder,
	}
}

// CreateAddon 创建加购项
func (h *Handler) CreateAddon(c *gin.Context) {
	var req AddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	addon, err := h.PackageService.CreateAddon(req.toInput())
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, addon)
}

// UpdateAddon 更新加购项
func (h *Handler) UpdateAddon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req AddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	addon, err := h.PackageService.UpdateAddon(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, addon)
}

// DeleteAddon 删除加购项（软删除）
func (h *Handler) DeleteAddon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.PackageService.DeleteAddon(id); err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, nil)
}
