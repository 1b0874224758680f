package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionRequest 订阅申请表
type SubscriptionRequest struct {
	ID             uint              `gorm:"primarykey" json:"id"`                            // 主键
	UserID         uint              `gorm:"not null;index" json:"user_id"`                   // 申请客户 ID
	User           *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`         // 申请客户
	ContactName    string            `gorm:"default:''" json:"contact_name"`                  // 收餐人姓名
	ContactPhone   string            `gorm:"default:''" json:"contact_phone"`                 // 收餐人电话（为空时回退客户电话）
	Address        string            `gorm:"type:text" json:"address"`                        // 配送地址
	Latitude       *float64          `json:"latitude"`                                        // 配送地址纬度
	Longitude      *float64          `json:"longitude"`                                       // 配送地址经度
	GroupLabel     string            `gorm:"default:''" json:"group_label"`                   // 配送分组标签
	GroupID        *uint             `gorm:"index" json:"group_id"`                           // 关联配送分组
	Group          *DeliveryGroup    `gorm:"foreignKey:GroupID" json:"group,omitempty"`       // 配送分组
	StartDate      time.Time         `gorm:"index" json:"start_date"`                         // 订阅开始日期
	EndDate        time.Time         `gorm:"index" json:"end_date"`                           // 订阅结束日期
	MealSelections MealSelectionList `gorm:"type:json" json:"meal_selections"`                // 订餐选择
	PausedMeals    StringArray       `gorm:"type:json" json:"paused_meals"`                   // 暂停的餐别
	AddonIDs       StringArray       `gorm:"type:json" json:"addon_ids"`                      // 加购项 ID 集合
	Status         string            `gorm:"default:'pending';index" json:"status"`           // 状态（pending/approved/rejected/expired）
	TotalAmount    Money             `gorm:"type:decimal(20,2);default:0" json:"total_amount"`// 订阅总价快照
	CouponCode     string            `gorm:"default:''" json:"coupon_code"`                   // 使用的优惠码
	Notes          string            `gorm:"type:text" json:"notes"`                          // 备注
	ReviewedAt     *time.Time        `json:"reviewed_at"`                                     // 审核时间
	ReviewedBy     *uint             `json:"reviewed_by"`                                     // 审核管理员 ID
	CreatedAt      time.Time         `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt      time.Time         `gorm:"index" json:"updated_at"`                         // 更新时间
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (SubscriptionRequest) TableName() string {
	return "subscription_requests"
}

// ActiveSelections 返回未被暂停的订餐选择
func (s *SubscriptionRequest) ActiveSelections() []MealSelection {
	if len(s.MealSelections) == 0 {
		return nil
	}
	paused := make(map[string]bool, len(s.PausedMeals))
	for _, meal := range s.PausedMeals {
		paused[meal] = true
	}
	var active []MealSelection
	for _, selection := range s.MealSelections {
		if paused[selection.MealType] {
			continue
		}
		active = append(active, selection)
	}
	return active
}
