package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService 钱包服务
type WalletService struct {
	walletRepo repository.WalletRepository
	userRepo   repository.UserRepository
}

// WalletCreditInput 入账输入
type WalletCreditInput struct {
	UserID    uint
	Amount    models.Money
	TxnType   string
	Reference string
	Remark    string
}

// WalletDebitInput 出账输入
type WalletDebitInput struct {
	UserID    uint
	Amount    models.Money
	TxnType   string
	Reference string
	Remark    string
}

// WalletAdjustInput 管理员余额调整输入（Delta 可为负）
type WalletAdjustInput struct {
	UserID uint
	Delta  models.Money
	Remark string
}

// NewWalletService 创建钱包服务
func NewWalletService(walletRepo repository.WalletRepository, userRepo repository.UserRepository) *WalletService {
	return &WalletService{
		walletRepo: walletRepo,
		userRepo:   userRepo,
	}
}

// GetWallet 获取钱包（不存在时自动创建）
func (s *WalletService) GetWallet(userID uint) (*models.Wallet, error) {
	if userID == 0 {
		return nil, ErrWalletNotFound
	}
	wallet, err := s.walletRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	wallet = &models.Wallet{UserID: userID, Balance: models.NewMoneyFromDecimal(decimal.Zero)}
	if err := s.walletRepo.Create(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// ListTransactions 查询钱包流水
func (s *WalletService) ListTransactions(filter repository.WalletTransactionListFilter) ([]models.WalletTransaction, int64, error) {
	return s.walletRepo.ListTransactions(filter)
}

// Credit 入账（充值等），引用号幂等
func (s *WalletService) Credit(input WalletCreditInput) (*models.Wallet, *models.WalletTransaction, error) {
	amount := input.Amount.Decimal.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrWalletInvalidAmount
	}
	return s.changeBalance(input.UserID, amount, input.TxnType, constants.WalletTxnDirectionIn, input.Reference, input.Remark)
}

// Debit 出账（订阅扣款等），余额不足时拒绝，引用号幂等
func (s *WalletService) Debit(input WalletDebitInput) (*models.Wallet, *models.WalletTransaction, error) {
	amount := input.Amount.Decimal.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrWalletInvalidAmount
	}
	return s.changeBalance(input.UserID, amount, input.TxnType, constants.WalletTxnDirectionOut, input.Reference, input.Remark)
}

// AdminAdjust 管理员增减余额，扣减不允许穿透到负数
func (s *WalletService) AdminAdjust(input WalletAdjustInput) (*models.Wallet, *models.WalletTransaction, error) {
	delta := input.Delta.Decimal.Round(2)
	if delta.IsZero() {
		return nil, nil, ErrWalletInvalidAmount
	}
	direction := constants.WalletTxnDirectionIn
	amount := delta
	if delta.IsNegative() {
		direction = constants.WalletTxnDirectionOut
		amount = delta.Neg()
	}
	reference := buildWalletReference("admin_adjust", input.UserID)
	remark := cleanWalletRemark(input.Remark, "管理员调整余额")
	return s.changeBalance(input.UserID, amount, constants.WalletTxnTypeAdminAdjust, direction, reference, remark)
}

// changeBalance 在单事务内加锁变更余额并落流水
func (s *WalletService) changeBalance(userID uint, amount decimal.Decimal, txnType, direction, reference, remark string) (*models.Wallet, *models.WalletTransaction, error) {
	if userID == 0 {
		return nil, nil, ErrWalletNotFound
	}
	if _, err := s.GetWallet(userID); err != nil {
		return nil, nil, err
	}

	var (
		walletResult *models.Wallet
		txnResult    *models.WalletTransaction
	)
	err := s.walletRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.walletRepo.WithTx(tx)

		// 引用号幂等：已有流水直接返回当前状态
		existing, err := repo.GetTransactionByReference(reference)
		if err != nil {
			return err
		}
		if existing != nil {
			wallet, err := repo.GetByUserID(userID)
			if err != nil {
				return err
			}
			walletResult = wallet
			txnResult = existing
			return nil
		}

		wallet, err := repo.GetByUserIDForUpdate(userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		balance := wallet.Balance.Decimal
		if direction == constants.WalletTxnDirectionOut {
			if balance.LessThan(amount) {
				return ErrInsufficientBalance
			}
			balance = balance.Sub(amount)
		} else {
			balance = balance.Add(amount)
		}
		wallet.Balance = models.NewMoneyFromDecimal(balance)
		if err := repo.Update(wallet); err != nil {
			return err
		}

		txn := &models.WalletTransaction{
			WalletID:     wallet.ID,
			UserID:       userID,
			Type:         txnType,
			Direction:    direction,
			Amount:       models.NewMoneyFromDecimal(amount),
			BalanceAfter: wallet.Balance,
			Reference:    reference,
			Remark:       remark,
		}
		if err := repo.CreateTransaction(txn); err != nil {
			return err
		}

		walletResult = wallet
		txnResult = txn
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return walletResult, txnResult, nil
}

func buildWalletReference(kind string, userID uint) string {
	return fmt.Sprintf("%s:%d:%d", kind, userID, time.Now().UnixNano())
}

func cleanWalletRemark(remark, fallback string) string {
	remark = strings.TrimSpace(remark)
	if remark == "" {
		return fallback
	}
	return remark
}
