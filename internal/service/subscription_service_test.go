package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type syncTriggerSpy struct {
	calls int
}

func (s *syncTriggerSpy) TriggerDeliverySync(ctx context.Context) error {
	s.calls++
	return nil
}

type subscriptionFixture struct {
	db      *gorm.DB
	svc     *SubscriptionService
	wallet  *WalletService
	trigger *syncTriggerSpy
	user    *models.User
	pkg     *models.MealPackage
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:subscriptionsvc?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.MealPackage{},
		&models.DeliveryGroup{},
		&models.SubscriptionRequest{},
		&models.Wallet{},
		&models.WalletTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, model := range []interface{}{
		&models.WalletTransaction{},
		&models.Wallet{},
		&models.SubscriptionRequest{},
		&models.DeliveryGroup{},
		&models.MealPackage{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("cleanup failed: %v", err)
		}
	}

	user := &models.User{Email: "sub@example.com", PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	pkg := &models.MealPackage{
		Name:      "standard dinner",
		MealTypes: models.StringArray{constants.MealTypeDinner},
		Price:     moneyFromInt(20),
		IsActive:  true,
	}
	if err := db.Create(pkg).Error; err != nil {
		t.Fatalf("seed package failed: %v", err)
	}

	wallet := NewWalletService(repository.NewWalletRepository(db), repository.NewUserRepository(db))
	trigger := &syncTriggerSpy{}
	svc := NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewMealPackageRepository(db),
		repository.NewDeliveryGroupRepository(db),
		wallet,
		nil,
		trigger,
	)
	return &subscriptionFixture{db: db, svc: svc, wallet: wallet, trigger: trigger, user: user, pkg: pkg}
}

func (f *subscriptionFixture) createInput() SubscriptionCreateInput {
	return SubscriptionCreateInput{
		UserID:       f.user.ID,
		ContactName:  "zhang san",
		ContactPhone: "13800000000",
		Address:      "people square 100",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 1, 0),
		MealSelections: []models.MealSelection{
			{PackageID: f.pkg.ID, MealType: constants.MealTypeDinner, Quantity: 2},
		},
	}
}

func TestSubscriptionCreatePricesSelections(t *testing.T) {
	f := newSubscriptionFixture(t)

	request, err := f.svc.Create(f.createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if request.Status != constants.SubscriptionStatusPending {
		t.Fatalf("new request must be pending, got %s", request.Status)
	}
	if !request.TotalAmount.Decimal.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected total 40 for 2 x 20, got %s", request.TotalAmount.Decimal)
	}
	if len(request.MealSelections) != 1 || request.MealSelections[0].PackageName != f.pkg.Name {
		t.Fatalf("selection must snapshot the package name, got %+v", request.MealSelections)
	}
}

func TestSubscriptionCreateValidation(t *testing.T) {
	f := newSubscriptionFixture(t)

	input := f.createInput()
	input.EndDate = input.StartDate.AddDate(0, 0, -1)
	if _, err := f.svc.Create(input); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	input = f.createInput()
	input.MealSelections = nil
	if _, err := f.svc.Create(input); !errors.Is(err, ErrNoMealSelection) {
		t.Fatalf("expected ErrNoMealSelection, got %v", err)
	}

	f.pkg.IsActive = false
	if err := f.db.Save(f.pkg).Error; err != nil {
		t.Fatalf("deactivate package failed: %v", err)
	}
	if _, err := f.svc.Create(f.createInput()); !errors.Is(err, ErrPackageInactive) {
		t.Fatalf("expected ErrPackageInactive, got %v", err)
	}

	input = f.createInput()
	input.MealSelections = []models.MealSelection{{PackageID: 9999, MealType: constants.MealTypeDinner}}
	if _, err := f.svc.Create(input); !errors.Is(err, ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestSubscriptionApproveDebitsWalletAndTriggersSync(t *testing.T) {
	f := newSubscriptionFixture(t)

	request, err := f.svc.Create(f.createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, _, err := f.wallet.Credit(WalletCreditInput{
		UserID:    f.user.ID,
		Amount:    moneyFromInt(100),
		TxnType:   constants.WalletTxnTypeRecharge,
		Reference: "recharge:approve:1",
	}); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	approved, err := f.svc.Approve(request.ID, 1)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != constants.SubscriptionStatusApproved {
		t.Fatalf("unexpected status: %s", approved.Status)
	}
	if approved.ReviewedAt == nil || approved.ReviewedBy == nil || *approved.ReviewedBy != 1 {
		t.Fatal("review metadata must be recorded")
	}
	if f.trigger.calls != 1 {
		t.Fatalf("approve must trigger one delivery sync, got %d", f.trigger.calls)
	}

	wallet, err := f.wallet.GetWallet(f.user.ID)
	if err != nil {
		t.Fatalf("get wallet failed: %v", err)
	}
	if !wallet.Balance.Decimal.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected balance 60 after 40 debit, got %s", wallet.Balance.Decimal)
	}

	if _, err := f.svc.Approve(request.ID, 1); !errors.Is(err, ErrSubscriptionNotPending) {
		t.Fatalf("re-approving must be rejected, got %v", err)
	}
}

func TestSubscriptionApproveInsufficientBalance(t *testing.T) {
	f := newSubscriptionFixture(t)

	request, err := f.svc.Create(f.createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := f.svc.Approve(request.ID, 1); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	reloaded, err := f.svc.Get(request.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Status != constants.SubscriptionStatusPending {
		t.Fatalf("failed approval must leave the request pending, got %s", reloaded.Status)
	}
	if f.trigger.calls != 0 {
		t.Fatal("failed approval must not trigger a sync")
	}
}

func TestSubscriptionRejectAndOwnership(t *testing.T) {
	f := newSubscriptionFixture(t)

	request, err := f.svc.Create(f.createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rejected, err := f.svc.Reject(request.ID, 2, "地址超出配送范围")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != constants.SubscriptionStatusRejected {
		t.Fatalf("unexpected status: %s", rejected.Status)
	}

	if _, err := f.svc.GetOwned(f.user.ID+1, request.ID); !errors.Is(err, ErrSubscriptionNotOwned) {
		t.Fatalf("expected ErrSubscriptionNotOwned, got %v", err)
	}
}

func TestSubscriptionPauseMealsTriggersSync(t *testing.T) {
	f := newSubscriptionFixture(t)

	request, err := f.svc.Create(f.createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := f.svc.PauseMeals(f.user.ID, request.ID, []string{constants.MealTypeDinner})
	if err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if len(updated.PausedMeals) != 1 || updated.PausedMeals[0] != constants.MealTypeDinner {
		t.Fatalf("unexpected paused meals: %v", updated.PausedMeals)
	}
	if len(updated.ActiveSelections()) != 0 {
		t.Fatal("paused meal type must drop out of active selections")
	}
	if f.trigger.calls != 1 {
		t.Fatalf("pause must trigger one delivery sync, got %d", f.trigger.calls)
	}
}

func TestSubscriptionExpireOverdue(t *testing.T) {
	f := newSubscriptionFixture(t)

	input := f.createInput()
	input.StartDate = time.Now().AddDate(0, -2, 0)
	input.EndDate = time.Now().AddDate(0, -1, 0)
	request, err := f.svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	request.Status = constants.SubscriptionStatusApproved
	if err := f.db.Save(request).Error; err != nil {
		t.Fatalf("approve directly failed: %v", err)
	}

	expired, err := f.svc.ExpireOverdue(time.Now())
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expected 1 expired request, got %d", expired)
	}

	reloaded, err := f.svc.Get(request.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Status != constants.SubscriptionStatusExpired {
		t.Fatalf("unexpected status: %s", reloaded.Status)
	}
	if f.trigger.calls != 1 {
		t.Fatalf("expiry must trigger one delivery sync, got %d", f.trigger.calls)
	}
}
