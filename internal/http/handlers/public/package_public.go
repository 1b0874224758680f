package public

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPackages 获取上架中的套餐列表
func (h *Handler) GetPackages(c *gin.Context) {
	page, pageSize := queryPagination(c)
	packages, total, err := h.PackageService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, packages, response.NewPagination(page, pageSize, total))
}

// GetPackage 获取套餐详情
func (h *Handler) GetPackage(c *gin.Context) {
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

// GetAddons 获取启用中的加购项列表
func (h *Handler) GetAddons(c *gin.Context) {
	addons, err := h.PackageService.ListAddons(true)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, addons)
}
