package models

import (
	"time"
)

// DeliveryAssignment 配送单表（由同步器从已批准的订阅申请派生）
type DeliveryAssignment struct {
	ID              uint       `gorm:"primarykey" json:"id"`                           // 主键
	AssignmentKey   string     `gorm:"uniqueIndex;not null" json:"assignment_key"`     // 确定性业务键（订阅+波次）
	SubscriptionID  uint       `gorm:"not null;index" json:"subscription_id"`          // 来源订阅申请 ID
	UserID          uint       `gorm:"not null;index" json:"user_id"`                  // 客户 ID
	Window          string     `gorm:"not null;index" json:"window"`                   // 配送波次（breakfast/dinner）
	MealDescription string     `gorm:"type:text" json:"meal_description"`              // 餐品描述（早班波次为拼接结果）
	PackageID       *uint      `gorm:"index" json:"package_id"`                        // 参考套餐 ID（首条选择）
	CustomerName    string     `gorm:"default:''" json:"customer_name"`                // 收餐人姓名
	Phone           string     `gorm:"default:''" json:"phone"`                        // 联系电话
	Address         string     `gorm:"type:text" json:"address"`                       // 配送地址
	GroupName       string     `gorm:"default:'';index" json:"group_name"`             // 配送分组名
	Latitude        *float64   `json:"latitude"`                                       // 配送地址纬度
	Longitude       *float64   `json:"longitude"`                                      // 配送地址经度
	DistanceKM      float64    `json:"distance_km"`                                    // 距配送中心距离（公里，2 位小数）
	CourierID       *uint      `gorm:"index" json:"courier_id"`                        // 配送员 ID（运营指派，同步器不覆盖）
	Courier         *Courier   `gorm:"foreignKey:CourierID" json:"courier,omitempty"`  // 配送员
	Status          string     `gorm:"default:'pending';index" json:"status"`          // 状态（pending/assigned/en-route/delivered）
	DeliveredAt     *time.Time `json:"delivered_at"`                                   // 送达时间
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt       time.Time  `gorm:"index" json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (DeliveryAssignment) TableName() string {
	return "delivery_assignments"
}
