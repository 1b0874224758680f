package public

import (
	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetMyWallet 获取当前客户的钱包
func (h *Handler) GetMyWallet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	wallet, err := h.WalletService.GetWallet(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, wallet)
}

// GetMyWalletTransactions 获取当前客户的钱包流水
func (h *Handler) GetMyWalletTransactions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := queryPagination(c)

	txns, total, err := h.WalletService.ListTransactions(repository.WalletTransactionListFilter{
		UserID:    userID,
		Type:      c.Query("type"),
		Direction: c.Query("direction"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, txns, response.NewPagination(page, pageSize, total))
}
