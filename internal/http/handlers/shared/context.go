package shared

import (
	"strconv"
	"strings"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Locale 解析请求语言：上下文注入优先，其次 Accept-Language 头
func Locale(c *gin.Context) string {
	if c == nil {
		return i18n.Resolve("")
	}
	if value, ok := c.Get("locale"); ok {
		if locale, ok := value.(string); ok && locale != "" {
			return i18n.Resolve(locale)
		}
	}
	accept := c.GetHeader("Accept-Language")
	if idx := strings.IndexAny(accept, ",;"); idx >= 0 {
		accept = accept[:idx]
	}
	return i18n.Resolve(accept)
}

// GetContextUint 从上下文读取 uint 值，缺失或类型不符时统一响应错误
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "common.unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, "common.invalid_params", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, "common.invalid_params", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, "common.internal_error", nil)
		return 0, false
	}
}

// ParamUint 解析路径参数为 uint
func ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, "common.invalid_params", nil)
		return 0, false
	}
	return uint(value), true
}
