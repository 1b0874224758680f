package models

import (
	"time"

	"gorm.io/gorm"
)

// MealPackage 餐饮套餐表
type MealPackage struct {
	ID           uint           `gorm:"primarykey" json:"id"`                          // 主键
	Name         string         `gorm:"not null;index" json:"name"`                    // 套餐名称
	Description  string         `gorm:"type:text" json:"description"`                  // 套餐描述
	MealTypes    StringArray    `gorm:"type:json" json:"meal_types"`                   // 包含餐别（Breakfast/Lunch/Dinner）
	Price        Money          `gorm:"type:decimal(20,2);not null" json:"price"`      // 套餐价格（周期价）
	DurationDays int            `gorm:"not null;default:30" json:"duration_days"`      // 订阅周期天数
	IsActive     bool           `gorm:"not null;default:true;index" json:"is_active"`  // 是否上架
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`             // 排序权重
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                       // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (MealPackage) TableName() string {
	return "meal_packages"
}

// PackageAddon 套餐加购项表
type PackageAddon struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	Name      string         `gorm:"not null" json:"name"`                         // 加购项名称
	Price     Money          `gorm:"type:decimal(20,2);not null" json:"price"`     // 加购价格
	IsActive  bool           `gorm:"not null;default:true;index" json:"is_active"` // 是否上架
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`            // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (PackageAddon) TableName() string {
	return "package_addons"
}
