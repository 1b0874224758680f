package service

import (
	"errors"
	"testing"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newWalletTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:walletsvc?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Wallet{}, &models.WalletTransaction{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, model := range []interface{}{&models.WalletTransaction{}, &models.Wallet{}, &models.User{}} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("cleanup failed: %v", err)
		}
	}
	return db
}

func newWalletService(t *testing.T, db *gorm.DB) (*WalletService, *models.User) {
	t.Helper()
	user := &models.User{Email: "wallet@example.com", PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	svc := NewWalletService(repository.NewWalletRepository(db), repository.NewUserRepository(db))
	return svc, user
}

func moneyFromInt(value int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(value))
}

func TestWalletCreditThenDebit(t *testing.T) {
	db := newWalletTestDB(t)
	svc, user := newWalletService(t, db)

	wallet, _, err := svc.Credit(WalletCreditInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(100),
		TxnType:   constants.WalletTxnTypeRecharge,
		Reference: "recharge:test:1",
	})
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected balance after credit: %s", wallet.Balance.Decimal)
	}

	wallet, txn, err := svc.Debit(WalletDebitInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(30),
		TxnType:   constants.WalletTxnTypeSubscriptionPay,
		Reference: "subscription:1:pay",
	})
	if err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("unexpected balance after debit: %s", wallet.Balance.Decimal)
	}
	if txn.Direction != constants.WalletTxnDirectionOut {
		t.Fatalf("unexpected txn direction: %s", txn.Direction)
	}
	if !txn.BalanceAfter.Decimal.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("unexpected balance_after: %s", txn.BalanceAfter.Decimal)
	}
}

func TestWalletDebitInsufficientBalance(t *testing.T) {
	db := newWalletTestDB(t)
	svc, user := newWalletService(t, db)

	if _, _, err := svc.Credit(WalletCreditInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(10),
		TxnType:   constants.WalletTxnTypeRecharge,
		Reference: "recharge:test:2",
	}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	_, _, err := svc.Debit(WalletDebitInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(50),
		TxnType:   constants.WalletTxnTypeSubscriptionPay,
		Reference: "subscription:2:pay",
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	wallet, err := svc.GetWallet(user.ID)
	if err != nil {
		t.Fatalf("get wallet failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("failed debit must not move the balance, got %s", wallet.Balance.Decimal)
	}

	var count int64
	if err := db.Model(&models.WalletTransaction{}).
		Where("reference = ?", "subscription:2:pay").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatal("failed debit must not write a transaction row")
	}
}

func TestWalletReferenceIdempotent(t *testing.T) {
	db := newWalletTestDB(t)
	svc, user := newWalletService(t, db)

	reference := "subscription:3:pay"
	if _, _, err := svc.Credit(WalletCreditInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(100),
		TxnType:   constants.WalletTxnTypeRecharge,
		Reference: "recharge:test:3",
	}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	first, firstTxn, err := svc.Debit(WalletDebitInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(40),
		TxnType:   constants.WalletTxnTypeSubscriptionPay,
		Reference: reference,
	})
	if err != nil {
		t.Fatalf("first debit failed: %v", err)
	}

	second, secondTxn, err := svc.Debit(WalletDebitInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(40),
		TxnType:   constants.WalletTxnTypeSubscriptionPay,
		Reference: reference,
	})
	if err != nil {
		t.Fatalf("repeated debit failed: %v", err)
	}
	if !second.Balance.Decimal.Equal(first.Balance.Decimal) {
		t.Fatalf("repeated reference must not move the balance again: %s vs %s",
			second.Balance.Decimal, first.Balance.Decimal)
	}
	if secondTxn.ID != firstTxn.ID {
		t.Fatalf("repeated reference must return the original transaction, got %d vs %d",
			secondTxn.ID, firstTxn.ID)
	}

	var count int64
	if err := db.Model(&models.WalletTransaction{}).
		Where("reference = ?", reference).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single transaction row, got %d", count)
	}
}

func TestWalletAdminAdjust(t *testing.T) {
	db := newWalletTestDB(t)
	svc, user := newWalletService(t, db)

	wallet, txn, err := svc.AdminAdjust(WalletAdjustInput{UserID: user.ID, Delta: moneyFromInt(25)})
	if err != nil {
		t.Fatalf("positive adjust failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("unexpected balance: %s", wallet.Balance.Decimal)
	}
	if txn.Direction != constants.WalletTxnDirectionIn || txn.Type != constants.WalletTxnTypeAdminAdjust {
		t.Fatalf("unexpected txn: %s/%s", txn.Type, txn.Direction)
	}

	if _, _, err := svc.AdminAdjust(WalletAdjustInput{UserID: user.ID, Delta: moneyFromInt(-100)}); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("negative adjust below zero must be rejected, got %v", err)
	}

	if _, _, err := svc.AdminAdjust(WalletAdjustInput{UserID: user.ID, Delta: moneyFromInt(0)}); !errors.Is(err, ErrWalletInvalidAmount) {
		t.Fatalf("zero delta must be rejected, got %v", err)
	}
}

func TestWalletInvalidAmounts(t *testing.T) {
	db := newWalletTestDB(t)
	svc, user := newWalletService(t, db)

	if _, _, err := svc.Credit(WalletCreditInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(-1),
		TxnType:   constants.WalletTxnTypeRecharge,
		Reference: "recharge:test:4",
	}); !errors.Is(err, ErrWalletInvalidAmount) {
		t.Fatalf("negative credit must be rejected, got %v", err)
	}

	if _, _, err := svc.Debit(WalletDebitInput{
		UserID:    user.ID,
		Amount:    moneyFromInt(0),
		TxnType:   constants.WalletTxnTypeSubscriptionPay,
		Reference: "subscription:4:pay",
	}); !errors.Is(err, ErrWalletInvalidAmount) {
		t.Fatalf("zero debit must be rejected, got %v", err)
	}
}
