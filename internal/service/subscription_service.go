package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"

	"github.com/shopspring/decimal"
)

// DeliverySyncTrigger 触发配送单重新同步（由队列客户端实现）
type DeliverySyncTrigger interface {
	TriggerDeliverySync(ctx context.Context) error
}

// SubscriptionService 订阅申请服务
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	packageRepo      repository.MealPackageRepository
	groupRepo        repository.DeliveryGroupRepository
	walletSvc        *WalletService
	couponSvc        *CouponService
	syncTrigger      DeliverySyncTrigger
}

// SubscriptionCreateInput 客户创建订阅申请输入
type SubscriptionCreateInput struct {
	UserID         uint
	ContactName    string
	ContactPhone   string
	Address        string
	Latitude       *float64
	Longitude      *float64
	GroupLabel     string
	GroupID        *uint
	StartDate      time.Time
	EndDate        time.Time
	MealSelections []models.MealSelection
	AddonIDs       []string
	CouponCode     string
	Notes          string
}

// NewSubscriptionService 创建订阅申请服务
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	packageRepo repository.MealPackageRepository,
	groupRepo repository.DeliveryGroupRepository,
	walletSvc *WalletService,
	couponSvc *CouponService,
	syncTrigger DeliverySyncTrigger,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		packageRepo:      packageRepo,
		groupRepo:        groupRepo,
		walletSvc:        walletSvc,
		couponSvc:        couponSvc,
		syncTrigger:      syncTrigger,
	}
}

// Create 客户提交订阅申请
func (s *SubscriptionService) Create(input SubscriptionCreateInput) (*models.SubscriptionRequest, error) {
	if input.UserID == 0 {
		return nil, ErrNotFound
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if len(input.MealSelections) == 0 {
		return nil, ErrNoMealSelection
	}

	total, selections, err := s.priceSelections(input.MealSelections)
	if err != nil {
		return nil, err
	}

	if input.GroupID != nil {
		group, err := s.groupRepo.GetByID(*input.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
	}

	couponCode := strings.TrimSpace(input.CouponCode)
	if couponCode != "" && s.couponSvc != nil {
		discounted, err := s.couponSvc.Preview(couponCode, input.UserID, models.NewMoneyFromDecimal(total))
		if err != nil {
			return nil, err
		}
		total = discounted.Decimal
	}

	request := &models.SubscriptionRequest{
		UserID:         input.UserID,
		ContactName:    strings.TrimSpace(input.ContactName),
		ContactPhone:   strings.TrimSpace(input.ContactPhone),
		Address:        strings.TrimSpace(input.Address),
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		GroupLabel:     strings.TrimSpace(input.GroupLabel),
		GroupID:        input.GroupID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		MealSelections: selections,
		AddonIDs:       models.StringArray(input.AddonIDs),
		Status:         constants.SubscriptionStatusPending,
		TotalAmount:    models.NewMoneyFromDecimal(total),
		CouponCode:     couponCode,
		Notes:          input.Notes,
	}
	if err := s.subscriptionRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// priceSelections 校验订餐选择并计算合计，同时补齐套餐名称快照
func (s *SubscriptionService) priceSelections(selections []models.MealSelection) (decimal.Decimal, models.MealSelectionList, error) {
	total := decimal.Zero
	priced := make(models.MealSelectionList, 0, len(selections))
	for _, selection := range selections {
		pkg, err := s.packageRepo.GetByID(selection.PackageID)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if pkg == nil {
			return decimal.Zero, nil, ErrPackageNotFound
		}
		if !pkg.IsActive {
			return decimal.Zero, nil, ErrPackageInactive
		}
		quantity := selection.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		selection.Quantity = quantity
		selection.PackageName = pkg.Name
		total = total.Add(pkg.Price.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
		priced = append(priced, selection)
	}
	return total, priced, nil
}

// Get 获取订阅申请
func (s *SubscriptionService) Get(id uint) (*models.SubscriptionRequest, error) {
	request, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrSubscriptionNotFound
	}
	return request, nil
}

// GetOwned 获取客户自己的订阅申请
func (s *SubscriptionService) GetOwned(userID, id uint) (*models.SubscriptionRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, ErrSubscriptionNotOwned
	}
	return request, nil
}

// List 管理端分页查询订阅申请
func (s *SubscriptionService) List(filter repository.SubscriptionListFilter) ([]models.SubscriptionRequest, int64, error) {
	return s.subscriptionRepo.List(filter)
}

// Approve 管理员批准订阅申请：扣款、记券、触发配送同步
func (s *SubscriptionService) Approve(id, adminID uint) (*models.SubscriptionRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.Status != constants.SubscriptionStatusPending {
		return nil, ErrSubscriptionNotPending
	}

	// 扣款幂等：同一订阅重复批准不会二次扣款
	if s.walletSvc != nil && request.TotalAmount.Decimal.GreaterThan(decimal.Zero) {
		reference := fmt.Sprintf("subscription:%d:pay", request.ID)
		if _, _, err := s.walletSvc.Debit(WalletDebitInput{
			UserID:    request.UserID,
			Amount:    request.TotalAmount,
			TxnType:   constants.WalletTxnTypeSubscriptionPay,
			Reference: reference,
			Remark:    fmt.Sprintf("订阅申请 #%d 扣款", request.ID),
		}); err != nil {
			return nil, err
		}
	}

	if request.CouponCode != "" && s.couponSvc != nil {
		if err := s.couponSvc.Redeem(request.CouponCode, request.UserID, &request.ID); err != nil {
			logger.Warnw("coupon_redeem_on_approve_failed",
				"subscription_id", request.ID,
				"coupon_code", request.CouponCode,
				"error", err,
			)
		}
	}

	now := time.Now()
	request.Status = constants.SubscriptionStatusApproved
	request.ReviewedAt = &now
	request.ReviewedBy = &adminID
	if err := s.subscriptionRepo.Update(request); err != nil {
		return nil, err
	}

	s.triggerSync("subscription_approved", request.ID)
	return request, nil
}

// Reject 管理员驳回订阅申请
func (s *SubscriptionService) Reject(id, adminID uint, reason string) (*models.SubscriptionRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.Status != constants.SubscriptionStatusPending {
		return nil, ErrSubscriptionNotPending
	}

	now := time.Now()
	request.Status = constants.SubscriptionStatusRejected
	request.ReviewedAt = &now
	request.ReviewedBy = &adminID
	if reason != "" {
		request.Notes = strings.TrimSpace(request.Notes + "\n驳回原因: " + reason)
	}
	if err := s.subscriptionRepo.Update(request); err != nil {
		return nil, err
	}
	return request, nil
}

// PauseMeals 客户暂停指定餐别，触发配送同步
func (s *SubscriptionService) PauseMeals(userID, id uint, meals []string) (*models.SubscriptionRequest, error) {
	request, err := s.GetOwned(userID, id)
	if err != nil {
		return nil, err
	}
	request.PausedMeals = models.StringArray(meals)
	if err := s.subscriptionRepo.Update(request); err != nil {
		return nil, err
	}
	s.triggerSync("meals_paused", request.ID)
	return request, nil
}

// ExpireOverdue 将已过结束日期的已批准订阅置为过期，返回处理条数
func (s *SubscriptionService) ExpireOverdue(now time.Time) (int, error) {
	requests, err := s.subscriptionRepo.ListAll()
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range requests {
		request := &requests[i]
		if request.Status != constants.SubscriptionStatusApproved {
			continue
		}
		if !request.EndDate.Before(now) {
			continue
		}
		request.Status = constants.SubscriptionStatusExpired
		if err := s.subscriptionRepo.Update(request); err != nil {
			return expired, err
		}
		expired++
	}
	if expired > 0 {
		s.triggerSync("subscriptions_expired", 0)
	}
	return expired, nil
}

func (s *SubscriptionService) triggerSync(reason string, subscriptionID uint) {
	if s.syncTrigger == nil {
		return
	}
	if err := s.syncTrigger.TriggerDeliverySync(context.Background()); err != nil {
		logger.Warnw("delivery_sync_trigger_failed",
			"reason", reason,
			"subscription_id", subscriptionID,
			"error", err,
		)
	}
}
