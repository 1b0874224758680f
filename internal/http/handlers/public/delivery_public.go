package public

import (
	"github.com/dingcan-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMyDeliveries 获取当前客户的配送单列表
func (h *Handler) GetMyDeliveries(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := queryPagination(c)

	assignments, total, err := h.DeliveryService.ListMine(userID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, assignments, response.NewPagination(page, pageSize, total))
}
