package public

import (
	"errors"
	"time"

	"github.com/dingcan-next/internal/http/response"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// MealSelectionRequest 订餐选择项
type MealSelectionRequest struct {
	PackageID   uint   `json:"package_id" binding:"required"`
	MealType    string `json:"meal_type" binding:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// SubscriptionCreateRequest 客户创建订阅申请请求
type SubscriptionCreateRequest struct {
	ContactName    string                 `json:"contact_name" binding:"required"`
	ContactPhone   string                 `json:"contact_phone" binding:"required"`
	Address        string                 `json:"address" binding:"required"`
	Latitude       *float64               `json:"latitude"`
	Longitude      *float64               `json:"longitude"`
	GroupLabel     string                 `json:"group_label"`
	GroupID        *uint                  `json:"group_id"`
	StartDate      string                 `json:"start_date" binding:"required"`
	EndDate        string                 `json:"end_date" binding:"required"`
	MealSelections []MealSelectionRequest `json:"meal_selections" binding:"required"`
	AddonIDs       []string               `json:"addon_ids"`
	CouponCode     string                 `json:"coupon_code"`
	Notes          string                 `json:"notes"`
}

// CreateSubscription 提交订阅申请
func (h *Handler) CreateSubscription(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	selections := make([]models.MealSelection, 0, len(req.MealSelections))
	for _, sel := range req.MealSelections {
		selections = append(selections, models.MealSelection{
			PackageID:   sel.PackageID,
			MealType:    sel.MealType,
			Description: sel.Description,
			Quantity:    sel.Quantity,
		})
	}

	request, err := h.SubscriptionService.Create(service.SubscriptionCreateInput{
		UserID:         userID,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		GroupLabel:     req.GroupLabel,
		GroupID:        req.GroupID,
		StartDate:      startDate,
		EndDate:        endDate,
		MealSelections: selections,
		AddonIDs:       req.AddonIDs,
		CouponCode:     req.CouponCode,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateRange),
			errors.Is(err, service.ErrNoMealSelection),
			errors.Is(err, service.ErrPackageInactive),
			errors.Is(err, service.ErrGroupNotFound):
			respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrPackageNotFound):
			respondError(c, response.CodeNotFound, "common.not_found", nil)
		case errors.Is(err, service.ErrCouponNotFound):
			respondError(c, response.CodeBadRequest, "coupon.not_found", nil)
		case errors.Is(err, service.ErrCouponInactive),
			errors.Is(err, service.ErrCouponExpired):
			respondError(c, response.CodeBadRequest, "coupon.expired", nil)
		case errors.Is(err, service.ErrCouponExhausted),
			errors.Is(err, service.ErrCouponUserLimit):
			respondError(c, response.CodeBadRequest, "coupon.exhausted", nil)
		case errors.Is(err, service.ErrCouponMinAmount):
			respondError(c, response.CodeBadRequest, "coupon.min_amount", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, request)
}

// GetMySubscriptions 获取当前客户的订阅申请列表
func (h *Handler) GetMySubscriptions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := queryPagination(c)

	requests, total, err := h.SubscriptionService.List(repository.SubscriptionListFilter{
		UserID:   userID,
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "common.internal_error", err)
		return
	}
	response.SuccessWithPage(c, requests, response.NewPagination(page, pageSize, total))
}

// GetMySubscription 获取当前客户的订阅申请详情
func (h *Handler) GetMySubscription(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	request, err := h.SubscriptionService.GetOwned(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondError(c, response.CodeNotFound, "subscription.not_found", nil)
		case errors.Is(err, service.ErrSubscriptionNotOwned):
			respondError(c, response.CodeForbidden, "common.forbidden", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, request)
}

// PauseMealsRequest 暂停指定餐别请求
type PauseMealsRequest struct {
	Meals []string `json:"meals" binding:"required"`
}

// PauseMeals 暂停订阅内的指定餐别并触发配送同步
func (h *Handler) PauseMeals(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req PauseMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "common.invalid_params", err)
		return
	}

	request, err := h.SubscriptionService.PauseMeals(userID, id, req.Meals)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondError(c, response.CodeNotFound, "subscription.not_found", nil)
		case errors.Is(err, service.ErrSubscriptionNotOwned):
			respondError(c, response.CodeForbidden, "common.forbidden", nil)
		default:
			respondError(c, response.CodeInternal, "common.internal_error", err)
		}
		return
	}
	response.Success(c, request)
}
