package admin

import (
	"errors"
	"strconv"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func paramUserID(c *gin.Context) (uint, bool) {
	raw := c.Param("user_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return 0, false
	}
	return uint(id), true
}

// GetAdminWallet 获取指定用户钱包 (Admin)
func (h *Handler) GetAdminWallet(c *gin.Context) {
	userID, ok := paramUserID(c)
	if !ok {
		return
	}
	wallet, err := h.WalletService.GetWallet(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrWalletNotFound) {
			respondError(c, response.CodeNotFound, "common.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.Success(c, wallet)
}

// WalletAdjustRequest 余额调整请求，delta 可为负
type WalletAdjustRequest struct {
	Delta  float64 `json:"delta" binding:"required"`
	Remark string  `json:"remark"`
}

// AdjustAdminWallet 管理员调整用户余额
func (h *Handler) AdjustAdminWallet(c *gin.Context) {
	userID, ok := paramUserID(c)
	if !ok {
		return
	}
	var req WalletAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	wallet, txn, err := h.WalletService.AdminAdjust(service.WalletAdjustInput{
		UserID: userID,
		Delta:  models.NewMoneyFromDecimal(decimal.NewFromFloat(req.Delta)),
		Remark: req.Remark,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrWalletNotFound):
			respondError(c, response.CodeNotFound, "common.not_found", nil)
		case errors.Is(err, service.ErrInsufficientBalance):
			respondError(c, response.CodeBadRequest, "wallet.insufficient_balance", nil)
		case errors.Is(err, service.ErrWalletInvalidAmount):
			respondError(c, response.CodeBadRequest, "wallet.invalid_amount", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, gin.H{
		"wallet":      wallet,
		"transaction": txn,
	})
}

// GetAdminWalletTransactions 获取钱包流水列表 (Admin)
func (h *Handler) GetAdminWalletTransactions(c *gin.Context) {
	page, pageSize := queryPagination(c)
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	txns, total, err := h.WalletService.ListTransactions(repository.WalletTransactionListFilter{
		UserID:    uint(userID),
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
