package service

import (
	"strings"
	"time"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
}

// CouponInput 优惠券创建/更新输入
type CouponInput struct {
	Code         string
	Type         string
	Value        models.Money
	MinAmount    models.Money
	MaxDiscount  models.Money
	UsageLimit   int
	PerUserLimit int
	StartsAt     *time.Time
	EndsAt       *time.Time
	IsActive     *bool
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// List 管理端分页查询优惠券
func (s *CouponService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// Get 获取优惠券
func (s *CouponService) Get(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// Create 创建优惠券
func (s *CouponService) Create(input CouponInput) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, ErrCouponNotFound
	}
	existing, err := s.couponRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCouponCodeTaken
	}
	if input.Type != constants.CouponTypeFixed && input.Type != constants.CouponTypePercent {
		return nil, ErrCouponNotFound
	}
	if input.Value.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}

	coupon := &models.Coupon{
		Code:         code,
		Type:         input.Type,
		Value:        input.Value,
		MinAmount:    input.MinAmount,
		MaxDiscount:  input.MaxDiscount,
		UsageLimit:   input.UsageLimit,
		PerUserLimit: input.PerUserLimit,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		IsActive:     true,
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券
func (s *CouponService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	coupon, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if input.Type != "" {
		coupon.Type = input.Type
	}
	if input.Value.Decimal.GreaterThan(decimal.Zero) {
		coupon.Value = input.Value
	}
	coupon.MinAmount = input.MinAmount
	coupon.MaxDiscount = input.MaxDiscount
	coupon.UsageLimit = input.UsageLimit
	coupon.PerUserLimit = input.PerUserLimit
	coupon.StartsAt = input.StartsAt
	coupon.EndsAt = input.EndsAt
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.couponRepo.Delete(id)
}

// Preview 校验优惠码并返回折后金额（不占用次数）
func (s *CouponService) Preview(code string, userID uint, amount models.Money) (models.Money, error) {
	coupon, err := s.validate(code, userID, amount)
	if err != nil {
		return models.Money{}, err
	}
	return applyCoupon(coupon, amount), nil
}

// Redeem 占用一次优惠券使用次数（在库存行锁内自增）
func (s *CouponService) Redeem(code string, userID uint, subscriptionID *uint) error {
	return s.couponRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.couponRepo.WithTx(tx)
		coupon, err := repo.GetByCodeForUpdate(code)
		if err != nil {
			return err
		}
		if coupon == nil {
			return ErrCouponNotFound
		}
		if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
			return ErrCouponExhausted
		}
		coupon.UsedCount++
		if err := repo.Update(coupon); err != nil {
			return err
		}
		return repo.CreateUsage(&models.CouponUsage{
			CouponID:       coupon.ID,
			UserID:         userID,
			SubscriptionID: subscriptionID,
		})
	})
}

func (s *CouponService) validate(code string, userID uint, amount models.Money) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}
	now := time.Now()
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return nil, ErrCouponExpired
	}
	if coupon.EndsAt != nil && now.After(*coupon.EndsAt) {
		return nil, ErrCouponExpired
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, ErrCouponExhausted
	}
	if coupon.MinAmount.Decimal.GreaterThan(decimal.Zero) && amount.Decimal.LessThan(coupon.MinAmount.Decimal) {
		return nil, ErrCouponMinAmount
	}
	if coupon.PerUserLimit > 0 && userID != 0 {
		used, err := s.couponRepo.CountUsagesByUser(coupon.ID, userID)
		if err != nil {
			return nil, err
		}
		if used >= int64(coupon.PerUserLimit) {
			return nil, ErrCouponUserLimit
		}
	}
	return coupon, nil
}

// applyCoupon 计算折后金额，不低于零
func applyCoupon(coupon *models.Coupon, amount models.Money) models.Money {
	base := amount.Decimal
	var discount decimal.Decimal
	switch coupon.Type {
	case constants.CouponTypePercent:
		discount = base.Mul(coupon.Value.Decimal).Div(decimal.NewFromInt(100))
	default:
		discount = coupon.Value.Decimal
	}
	if coupon.MaxDiscount.Decimal.GreaterThan(decimal.Zero) && discount.GreaterThan(coupon.MaxDiscount.Decimal) {
		discount = coupon.MaxDiscount.Decimal
	}
	result := base.Sub(discount)
	if result.IsNegative() {
		result = decimal.Zero
	}
	return models.NewMoneyFromDecimal(result)
}
