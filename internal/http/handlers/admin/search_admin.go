package admin

import (
	"errors"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSearchFields 获取集合的可检索字段目录
func (h *Handler) GetSearchFields(c *gin.Context) {
	fields, err := h.SearchService.Fields(c.Param("collection"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCollection) {
			respondError(c, response.CodeBadRequest, "common.invalid_params", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, fields)
}

// SearchCollection 在集合内按单字段检索，内存分页
func (h *Handler) SearchCollection(c *gin.Context) {
	page, pageSize := queryPagination(c)

	result, err := h.SearchService.Search(
		c.Request.Context(),
		c.Param("collection"),
		c.Query("field"),
		c.Query("value"),
		page,
		pageSize,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCollection), errors.Is(err, service.ErrUnknownField):
			respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.SuccessWithPage(c, result.Documents, response.NewPagination(page, pageSize, int64(result.Total)))
}
