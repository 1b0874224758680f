package models

import (
	"time"

	"gorm.io/gorm"
)

// DeliveryGroup 配送分组表（同步器的分组名查找表）
type DeliveryGroup struct {
	ID           uint           `gorm:"primarykey" json:"id"`              // 主键
	Name         string         `gorm:"not null;index" json:"name"`        // 分组名
	CategoryName string         `gorm:"default:''" json:"category_name"`   // 分类名（兜底用）
	LocationName string         `gorm:"default:''" json:"location_name"`   // 配送点名（兜底用）
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (DeliveryGroup) TableName() string {
	return "delivery_groups"
}

// DisplayName 按回退顺序返回分组展示名
func (g *DeliveryGroup) DisplayName() string {
	if g == nil {
		return ""
	}
	if g.LocationName != "" {
		return g.LocationName
	}
	if g.CategoryName != "" {
		return g.CategoryName
	}
	return g.Name
}
