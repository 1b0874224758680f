package admin

import (
	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/models"

	"github.com/gin-gonic/gin"
)

// GetAdminSettings 获取全部配置项 (Admin)
func (h *Handler) GetAdminSettings(c *gin.Context) {
	settings, err := h.SettingService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, settings)
}

// GetAdminSetting 获取单个配置项 (Admin)
func (h *Handler) GetAdminSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		respondError(c, response.CodeBadRequest, "common.invalid_params", nil)
		return
	}
	value, err := h.SettingService.Get(key)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, gin.H{"key": key, "value": value})
}

// UpdateAdminSetting 写入配置项（整值覆盖）
func (h *Handler) UpdateAdminSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		respondError(c, response.CodeBadRequest, "common.invalid_params", nil)
		return
	}
	var value models.JSON
	if err := c.ShouldBindJSON(&value); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	if err := h.SettingService.Set(key, value); err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, gin.H{"key": key, "value": value})
}
